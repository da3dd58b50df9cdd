package storage

import (
	"diagnosis-service/internal/app/config"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinio only builds the client; reachability is checked by the artifact store.
func NewMinio(driverConfig *config.DriverConfig) (*minio.Client, error) {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
		Region: driverConfig.Minio.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client for %s: %w", endPoint, err)
	}
	return minioClient, nil
}
