package mongorepo

import (
	"context"
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type previewChapterDoc struct {
	Number  int    `bson:"chapterNumber"`
	Title   string `bson:"title"`
	Content string `bson:"content"`
}

type previewDoc struct {
	BookID    int64               `bson:"bookId"`
	Chapters  []previewChapterDoc `bson:"chapters"`
	CreatedAt time.Time           `bson:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt"`
}

func (d previewDoc) toDomain() *domain.Preview {
	chapters := make([]domain.PreviewChapter, len(d.Chapters))
	for i, ch := range d.Chapters {
		chapters[i] = domain.PreviewChapter{Number: ch.Number, Title: ch.Title, Content: ch.Content}
	}
	return &domain.Preview{
		BookID:    d.BookID,
		Chapters:  chapters,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func chapterDocs(chapters []domain.PreviewChapter) []previewChapterDoc {
	docs := make([]previewChapterDoc, len(chapters))
	for i, ch := range chapters {
		docs[i] = previewChapterDoc{Number: ch.Number, Title: ch.Title, Content: ch.Content}
	}
	return docs
}

// PreviewRepository хранит ознакомительные главы книг, по одному документу на книгу.
type PreviewRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewPreviewRepository(db *mongo.Database) *PreviewRepository {
	return &PreviewRepository{coll: db.Collection(previewsCollection), now: time.Now}
}

// EnsureIndexes создает уникальный индекс по bookId.
func (p *PreviewRepository) EnsureIndexes(ctx context.Context) error {
	_, err := p.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "bookId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return convertErr(err, "creating preview indexes")
}

func (p *PreviewRepository) FindByBookID(ctx context.Context, bookID int64) (*domain.Preview, error) {
	var doc previewDoc
	if err := p.coll.FindOne(ctx, bson.M{"bookId": bookID}).Decode(&doc); err != nil {
		return nil, convertErr(err, "finding preview of book %d", bookID)
	}
	return doc.toDomain(), nil
}

// Create сохраняет новый превью. Если у книги уже есть превью, возвращает domain.ErrDuplicateKey.
func (p *PreviewRepository) Create(
	ctx context.Context,
	bookID int64,
	chapters []domain.PreviewChapter,
) (*domain.Preview, error) {
	now := p.now().UTC()
	doc := previewDoc{BookID: bookID, Chapters: chapterDocs(chapters), CreatedAt: now, UpdatedAt: now}
	if _, err := p.coll.InsertOne(ctx, doc); err != nil {
		return nil, convertErr(err, "creating preview of book %d", bookID)
	}
	return doc.toDomain(), nil
}

// Update заменяет главы существующего превью.
func (p *PreviewRepository) Update(
	ctx context.Context,
	bookID int64,
	chapters []domain.PreviewChapter,
) (*domain.Preview, error) {
	var doc previewDoc
	err := p.coll.FindOneAndUpdate(ctx,
		bson.M{"bookId": bookID},
		bson.M{"$set": bson.M{"chapters": chapterDocs(chapters), "updatedAt": p.now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, convertErr(err, "updating preview of book %d", bookID)
	}
	return doc.toDomain(), nil
}

func (p *PreviewRepository) DeleteByBookID(ctx context.Context, bookID int64) error {
	res, err := p.coll.DeleteOne(ctx, bson.M{"bookId": bookID})
	if err != nil {
		return convertErr(err, "deleting preview of book %d", bookID)
	}
	if res.DeletedCount == 0 {
		return convertErr(mongo.ErrNoDocuments, "deleting preview of book %d", bookID)
	}
	return nil
}
