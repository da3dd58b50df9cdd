package config

type (
	DriverConfig struct {
		Logger Logger
		Minio  Minio
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
		AccessLogFileName   string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		Region   string
		UseSSL   bool
	}
)
