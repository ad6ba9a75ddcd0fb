package main

import (
	"FindrHealth/internal/repository"
	"FindrHealth/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	repository.RunGenerate()
}
