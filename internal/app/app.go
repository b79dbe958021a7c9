package app

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/vk/unitgridgo/internal/config"
	"github.com/vk/unitgridgo/internal/hcl"
	"github.com/vk/unitgridgo/internal/textdef"
	"github.com/vk/unitgridgo/internal/yamldef"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders map[string]config.Loader
}

// NewApp is the constructor for the main application. Results are written to
// outW; logs go to logW so a conversion result stays clean on stdout.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		loaders: defaultLoaders(),
	}
}

// defaultLoaders maps definition file extensions to their loaders.
func defaultLoaders() map[string]config.Loader {
	return map[string]config.Loader{
		".def":  textdef.NewLoader(),
		".hcl":  hcl.NewLoader(),
		".yaml": yamldef.NewLoader(),
		".yml":  yamldef.NewLoader(),
	}
}

// loaderFor picks the loader matching the definition file's extension. An
// unknown extension falls back to the classic text format.
func (a *App) loaderFor(path string) config.Loader {
	ext := strings.ToLower(filepath.Ext(path))
	if l, ok := a.loaders[ext]; ok {
		return l
	}
	a.logger.Debug("Unknown definition file extension, assuming text format.", "path", path)
	return a.loaders[".def"]
}
