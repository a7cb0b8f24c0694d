package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gin-gonic/gin"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/chanyoung/sajinmal/classifier"
	"github.com/chanyoung/sajinmal/config"
	"github.com/chanyoung/sajinmal/onnx"
	"github.com/chanyoung/sajinmal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	slog.Info("Starting sajinmal")

	ort.SetSharedLibraryPath(onnx.LibPath())
	if err := ort.InitializeEnvironment(); err != nil {
		slog.Error("Failed to initialize ONNX Runtime environment", slog.String("error", err.Error()))
		return
	}
	defer ort.DestroyEnvironment()

	cls := classifier.New(config.C())
	defer cls.Close()

	if config.C().WarmupBoot {
		go func() {
			if err := cls.Warmup(ctx, classifier.LoadOptions{}); err != nil {
				slog.Error("Model warmup failed", slog.String("error", err.Error()))
			}
		}()
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	server.New(cls, config.C().Token).Register(r)

	addr := config.C().Host + ":" + config.C().Port
	slog.Info("Listening on", slog.String("address", addr))
	go func() {
		if err := r.Run(addr); err != nil {
			slog.Error("Server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}
