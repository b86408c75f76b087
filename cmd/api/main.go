package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/hugohenrick/dummy-messages-api/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	log := logger.NewLogger()

	// .env é opcional; em produção as variáveis já vêm do ambiente
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("não foi possível ler o arquivo .env", "error", err)
	}

	if err := NewApp().Start(); err != nil {
		log.Error("servidor encerrado com erro", "error", err)
		os.Exit(1)
	}
}
