// Copyright (c) 2026 varis3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/varis3d/varis/utility/spak"
)

var (
	author  = flag.String("author", "", "Set the author of the pack, defaults to the current user")
	version = flag.Int64("version", 1, "Pack version number to create it with")
	bundle  = flag.String("c", "", "Bundle the GLSL sources in the given directory")
	list    = flag.String("l", "", "List the contents of the given pack")
	dstFile = flag.String("f", "out.spak", "Destination file")
	silent  = flag.Bool("s", false, "Silent")
)

func main() {
	flag.Parse()

	if *bundle != "" && *list != "" {
		panic(errors.New("only one operation at a time"))
	}

	switch {
	case *bundle != "":
		if err := bundleShaders(); err != nil {
			panic(err)
		}
	case *list != "":
		if err := listPack(); err != nil {
			panic(err)
		}
	default:
		flag.PrintDefaults()
	}
}

func bundleShaders() error {
	if _, err := os.Stat(*dstFile); err == nil {
		return errors.New("destination file exists, will not overwrite")
	}

	packAuthor := *author
	if packAuthor == "" {
		packAuthor = currentUserName()
	}

	builder, err := spak.NewBuilder(spak.Header{
		Author:      packAuthor,
		DateCreated: time.Now().Unix(),
		Version:     *version,
	})
	if err != nil {
		return err
	}

	if err := filepath.Walk(*bundle, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		stage := spak.StageFromName(info.Name())
		if stage == spak.StageUnknown {
			return nil
		}
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		if !*silent {
			fmt.Printf("adding %s (%s)\n", info.Name(), stage)
		}
		return builder.Add(info.Name(), stage, data)
	}); err != nil {
		return err
	}

	dst, err := os.Create(*dstFile)
	if err != nil {
		return err
	}
	defer dst.Close()

	written, err := builder.WriteTo(dst)
	if err != nil {
		return err
	}
	if !*silent {
		fmt.Printf("wrote %s (%d bytes)\n", *dstFile, written)
	}
	return nil
}

func listPack() error {
	f, err := os.Open(*list)
	if err != nil {
		return err
	}
	defer f.Close()

	archive, err := spak.Open(f)
	if err != nil {
		return err
	}

	header := archive.Header()
	fmt.Printf("%s by %s, version %d, created %s\n",
		*list, header.Author, header.Version, time.Unix(header.DateCreated, 0))
	for _, e := range archive.Index() {
		fmt.Printf("%-8s %6d -> %6d  %s\n", e.Stage, e.Size, e.CompressedSize, e.Name)
	}
	return nil
}

func currentUserName() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return u.Name
}
