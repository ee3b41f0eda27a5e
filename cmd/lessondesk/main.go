package main

import (
	"log"

	_ "github.com/lib/pq"

	"github.com/ostrv1/LessonDesk/internal/app"
	"github.com/ostrv1/LessonDesk/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
