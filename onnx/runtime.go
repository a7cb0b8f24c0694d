package onnx

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/chanyoung/sajinmal/config"
)

var pathOnce sync.Once
var libPath string

func LibPath() string {
	pathOnce.Do(func() {
		libPath = loadLibPath()
		if libPath == "" {
			slog.Error("ONNX Runtime library path could not be determined for this OS")
		} else {
			slog.Info("Using ONNX Runtime library", slog.String("path", libPath))
		}
	})
	return libPath
}

func loadLibPath() string {
	if config.C().Libonnx != "" {
		return config.C().Libonnx
	}
	switch runtime.GOOS {
	case "linux":
		candidates := []string{
			filepath.Join("onnxlibs", "libonnxruntime.so"),
			"/usr/local/lib/libonnxruntime.so",
			"/usr/lib/libonnxruntime.so",
		}
		for _, path := range candidates {
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		return ""
	case "darwin":
		return "/usr/local/lib/libonnxruntime.dylib"
	default:
		return ""
	}
}
