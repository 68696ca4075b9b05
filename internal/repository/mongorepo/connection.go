package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	previewsCollection     = "book_previews"
	digitalFilesCollection = "digital_files"

	connectTimeout = 10 * time.Second
)

// Connect подключается к mongodb и проверяет соединение пингом.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if pingErr := client.Ping(ctx, nil); pingErr != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", pingErr)
	}
	return client, nil
}

// convertErr приводит ошибки драйвера mongo к ошибкам слоя репозитория.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("[repository/%s] %w: %s", msg, domain.ErrDuplicateKey, err.Error())
	default:
		return fmt.Errorf("[repository/%s] %w: %s", msg, domain.ErrUnknown, err.Error())
	}
}
