package storage

import (
	"FindrHealth/storage/database"
	"FindrHealth/storage/mq"
	"FindrHealth/storage/redis"
)

// Init brings up every storage backend.
func Init() error {
	if err := database.Init(); err != nil {
		return err
	}

	if err := redis.Init(); err != nil {
		return err
	}

	if err := mq.Init(); err != nil {
		return err
	}

	return nil
}
