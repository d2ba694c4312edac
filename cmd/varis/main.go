package main

import (
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/varis3d/varis/core"
	"github.com/varis3d/varis/device"
)

func init() {
	runtime.LockOSThread()
}

// Essential globals
var (
	glRenderer core.Renderer
	sdlWindow  *sdl.Window
	sdlContext sdl.GLContext
)

var configuration = core.FromEnv(".env")

func newWindow() *sdl.Window {
	window, err := sdl.CreateWindow("Varis3D",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(configuration.Renderer.ScreenWidth),
		int32(configuration.Renderer.ScreenHeight),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		log.Fatal(err)
	}
	return window
}

func main() {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	sdlWindow = newWindow()
	defer sdlWindow.Destroy()

	var contextErr error
	sdlContext, contextErr = sdlWindow.GLCreateContext()
	if contextErr != nil {
		log.Fatal(contextErr)
	}
	defer sdl.GLDeleteContext(sdlContext)

	if err := sdl.GLSetSwapInterval(1); err != nil {
		log.Warnf("sdl.GLSetSwapInterval(): %s", err)
	}

	if err := gl.Init(); err != nil {
		log.Fatal(err)
	}

	info := device.NewGLDevice().Info()
	log.Infof("OpenGL %s on %s (%s)", info.Version, info.Renderer, info.Vendor)

	var rendererErr error
	glRenderer, rendererErr = core.NewGLRenderer(configuration.Renderer)
	if rendererErr != nil {
		log.Fatal(rendererErr)
	}

	if err := glRenderer.Initialise(); err != nil {
		log.Fatal(err)
	}

	time := core.NewTime(configuration.Time)
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("Event loop exited")
			break EventLoop
		case <-time.FpsTicker().C:
			var event sdl.Event
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.WindowEvent:
					if et.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
						glRenderer.Resize(et.Data1, et.Data2)
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}

			if err := glRenderer.Draw(); err != nil {
				log.Errorf("draw: %s", err)
			}
			sdlWindow.GLSwap()
		}
	}

	time.Stop()
	glRenderer.Destroy()
}
