package core

import (
	"errors"
	"strconv"
	"strings"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Renderer RendererConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the delay between event queue polls,
	// in milliseconds
	EventPollDelay int
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	ScreenWidth  uint32
	ScreenHeight uint32

	ClearColor glm.Vec4

	VertexShaderPath   string
	FragmentShaderPath string
}

var (
	errEmptyColor  = errors.New("clear color not set")
	errColorFormat = errors.New("clear color needs four components")
)

// DefaultConfiguration is the configuration the engine starts
// with when nothing overrides it.
var DefaultConfiguration = Configuration{
	Time: TimeConfiguration{
		FramesPerSecond: 60,
		EventPollDelay:  10,
	},
	Renderer: RendererConfiguration{
		ScreenWidth:        800,
		ScreenHeight:       600,
		ClearColor:         glm.Vec4{0.1, 0.1, 0.1, 1.0},
		VertexShaderPath:   "./shaders/simple.vert",
		FragmentShaderPath: "./shaders/simple.frag",
	},
}

// FromEnv assembles a Configuration from VARIS_* environment variables,
// falling back to DefaultConfiguration values. Dotenv files given are
// loaded into the environment first, missing files are skipped silently.
func FromEnv(dotenvFiles ...string) Configuration {
	var loaded bool
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil {
			log.Debugf("godotenv.Load(): %s", err)
			continue
		}
		loaded = true
	}
	if loaded {
		// envy caches the environment at startup, dotenv values
		// arrive through the process environment
		envy.Reload()
	}

	cfg := DefaultConfiguration
	cfg.Time.FramesPerSecond = envInt("VARIS_FPS", cfg.Time.FramesPerSecond)
	cfg.Time.EventPollDelay = envInt("VARIS_EVENT_POLL_DELAY", cfg.Time.EventPollDelay)
	cfg.Renderer.ScreenWidth = uint32(envInt("VARIS_SCREEN_WIDTH", int(cfg.Renderer.ScreenWidth)))
	cfg.Renderer.ScreenHeight = uint32(envInt("VARIS_SCREEN_HEIGHT", int(cfg.Renderer.ScreenHeight)))
	cfg.Renderer.VertexShaderPath = envy.Get("VARIS_VERTEX_SHADER", cfg.Renderer.VertexShaderPath)
	cfg.Renderer.FragmentShaderPath = envy.Get("VARIS_FRAGMENT_SHADER", cfg.Renderer.FragmentShaderPath)
	if color, err := parseClearColor(envy.Get("VARIS_CLEAR_COLOR", "")); err == nil {
		cfg.Renderer.ClearColor = color
	}
	return cfg
}

func envInt(key string, fallback int) int {
	value := envy.Get(key, "")
	if value == "" {
		return fallback
	}
	num, err := strconv.Atoi(value)
	if err != nil {
		log.Errorf("configuration %s: %s", key, err)
		return fallback
	}
	return num
}

// parseClearColor reads an "r,g,b,a" float quad.
func parseClearColor(value string) (glm.Vec4, error) {
	var color glm.Vec4
	if value == "" {
		return color, errEmptyColor
	}
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return color, errColorFormat
	}
	for idx, part := range parts {
		component, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return glm.Vec4{}, err
		}
		color[idx] = float32(component)
	}
	return color, nil
}
