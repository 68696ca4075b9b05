package mongorepo

import (
	"context"
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type digitalFileDoc struct {
	BookID      int64     `bson:"bookId"`
	Filename    string    `bson:"filename"`
	Path        string    `bson:"path"`
	ContentType string    `bson:"contentType"`
	Size        int64     `bson:"size"`
	UploadedAt  time.Time `bson:"uploadedAt"`
}

func (d digitalFileDoc) toDomain() *domain.DigitalFile {
	return &domain.DigitalFile{
		BookID:      d.BookID,
		Filename:    d.Filename,
		Path:        d.Path,
		ContentType: d.ContentType,
		Size:        d.Size,
		UploadedAt:  d.UploadedAt,
	}
}

// DigitalFileRepository метаданные цифровых файлов книг. У книги не больше одного файла.
type DigitalFileRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewDigitalFileRepository(db *mongo.Database) *DigitalFileRepository {
	return &DigitalFileRepository{coll: db.Collection(digitalFilesCollection), now: time.Now}
}

func (d *DigitalFileRepository) EnsureIndexes(ctx context.Context) error {
	_, err := d.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "bookId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return convertErr(err, "creating digital file indexes")
}

func (d *DigitalFileRepository) FindByBookID(ctx context.Context, bookID int64) (*domain.DigitalFile, error) {
	var doc digitalFileDoc
	if err := d.coll.FindOne(ctx, bson.M{"bookId": bookID}).Decode(&doc); err != nil {
		return nil, convertErr(err, "finding digital file of book %d", bookID)
	}
	return doc.toDomain(), nil
}

// Save регистрирует файл книги, заменяя ранее зарегистрированный.
func (d *DigitalFileRepository) Save(ctx context.Context, file domain.DigitalFile) (*domain.DigitalFile, error) {
	doc := digitalFileDoc{
		BookID:      file.BookID,
		Filename:    file.Filename,
		Path:        file.Path,
		ContentType: file.ContentType,
		Size:        file.Size,
		UploadedAt:  d.now().UTC(),
	}
	_, err := d.coll.ReplaceOne(ctx, bson.M{"bookId": file.BookID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, convertErr(err, "saving digital file of book %d", file.BookID)
	}
	return doc.toDomain(), nil
}

func (d *DigitalFileRepository) DeleteByBookID(ctx context.Context, bookID int64) error {
	res, err := d.coll.DeleteOne(ctx, bson.M{"bookId": bookID})
	if err != nil {
		return convertErr(err, "deleting digital file of book %d", bookID)
	}
	if res.DeletedCount == 0 {
		return convertErr(mongo.ErrNoDocuments, "deleting digital file of book %d", bookID)
	}
	return nil
}
