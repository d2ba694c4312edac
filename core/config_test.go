package core

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/envy"
)

func TestFromEnvDefaults(t *testing.T) {
	envy.Temp(func() {
		cfg := FromEnv()

		if cfg.Renderer.ScreenWidth != 800 || cfg.Renderer.ScreenHeight != 600 {
			t.Errorf("unexpected default screen size %dx%d",
				cfg.Renderer.ScreenWidth, cfg.Renderer.ScreenHeight)
		}
		if cfg.Time.FramesPerSecond != 60 {
			t.Errorf("unexpected default fps %d", cfg.Time.FramesPerSecond)
		}
		if cfg.Renderer.VertexShaderPath != "./shaders/simple.vert" {
			t.Errorf("unexpected default vertex shader path %q", cfg.Renderer.VertexShaderPath)
		}
	})
}

func TestFromEnvOverrides(t *testing.T) {
	envy.Temp(func() {
		envy.Set("VARIS_SCREEN_WIDTH", "1024")
		envy.Set("VARIS_SCREEN_HEIGHT", "768")
		envy.Set("VARIS_FPS", "144")
		envy.Set("VARIS_VERTEX_SHADER", "./assets/other.vert")
		envy.Set("VARIS_CLEAR_COLOR", "0.0, 0.0, 0.0, 1.0")

		cfg := FromEnv()

		if cfg.Renderer.ScreenWidth != 1024 || cfg.Renderer.ScreenHeight != 768 {
			t.Errorf("override not applied, got %dx%d",
				cfg.Renderer.ScreenWidth, cfg.Renderer.ScreenHeight)
		}
		if cfg.Time.FramesPerSecond != 144 {
			t.Errorf("fps override not applied, got %d", cfg.Time.FramesPerSecond)
		}
		if cfg.Renderer.VertexShaderPath != "./assets/other.vert" {
			t.Errorf("shader path override not applied, got %q", cfg.Renderer.VertexShaderPath)
		}
		if cfg.Renderer.ClearColor != (glm.Vec4{0, 0, 0, 1}) {
			t.Errorf("clear color override not applied, got %v", cfg.Renderer.ClearColor)
		}
	})
}

func TestFromEnvBadNumber(t *testing.T) {
	envy.Temp(func() {
		envy.Set("VARIS_FPS", "fast")

		cfg := FromEnv()
		if cfg.Time.FramesPerSecond != 60 {
			t.Errorf("bad number must fall back to default, got %d", cfg.Time.FramesPerSecond)
		}
	})
}

func TestFromEnvDotenvFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "varisConfig")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	defer os.Unsetenv("VARIS_EVENT_POLL_DELAY")

	path := filepath.Join(dir, "varis.env")
	if err := ioutil.WriteFile(path, []byte("VARIS_EVENT_POLL_DELAY=25\n"), 0644); err != nil {
		t.Fatal(err)
	}

	envy.Temp(func() {
		cfg := FromEnv(path)
		if cfg.Time.EventPollDelay != 25 {
			t.Errorf("dotenv value not applied, got %d", cfg.Time.EventPollDelay)
		}
	})
}

func TestParseClearColor(t *testing.T) {
	color, err := parseClearColor("0.1, 0.2, 0.3, 1.0")
	if err != nil {
		t.Fatal(err)
	}
	want := glm.Vec4{0.1, 0.2, 0.3, 1.0}
	if color != want {
		t.Errorf("got %v, want %v", color, want)
	}

	if _, err := parseClearColor(""); err == nil {
		t.Error("empty value must not parse")
	}
	if _, err := parseClearColor("1,2,3"); err == nil {
		t.Error("three components must not parse")
	}
	if _, err := parseClearColor("a,b,c,d"); err == nil {
		t.Error("non-numeric components must not parse")
	}
}
