package main

import (
	"log"
	"os"

	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/model/menu"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/users"
)

func main() {
	conf, err := config.New()
	if err != nil {
		log.Fatal("failed to init config:", err)
	}

	fileStorage, err := storage.NewFileStorage(conf.Storage())
	if err != nil {
		log.Fatal("failed to init storage:", err)
	}

	registry := users.NewRegistry(fileStorage)
	menuService := menu.New(conf.App(), fileStorage, registry, os.Stdin, os.Stdout)

	menuService.Run()
}
