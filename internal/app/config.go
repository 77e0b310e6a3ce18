package app

import (
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/password"
	"github.com/nstuweb/campus-backend/internal/utils"
)

type Config struct {
	HTTPAddr   string
	BcryptCost int
}

func LoadConfig(log *logger.Logger) Config {
	httpAddr := utils.GetEnv("HTTP_ADDR", ":4000", log)
	bcryptCost := utils.GetEnvAsInt("BCRYPT_COST", password.DefaultCost, log)
	return Config{
		HTTPAddr:   httpAddr,
		BcryptCost: bcryptCost,
	}
}
