package dbmongo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PosterStorage keeps movie poster images in GridFS, keyed by movie id so the
// catalog can serve them without an external image host.
type PosterStorage struct {
	gridFS *gridfs.Bucket
}

func NewPosterStorage(mongoClient *MongoClient) *PosterStorage {
	return &PosterStorage{gridFS: mongoClient.GridFS}
}

type PosterFile struct {
	ID         string    `json:"id"`
	MovieID    string    `json:"movie_id"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mime_type"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func (ps *PosterStorage) Upload(ctx context.Context, movieID, filename, mimeType string, content io.Reader) (*PosterFile, error) {
	metadata := bson.M{
		"movie_id":    movieID,
		"mime_type":   mimeType,
		"uploaded_at": time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ps.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("poster upload failed: %w", err)
	}
	defer stream.Close()

	size, err := io.Copy(stream, content)
	if err != nil {
		return nil, fmt.Errorf("poster copy failed: %w", err)
	}

	return &PosterFile{
		ID:         stream.FileID.(primitive.ObjectID).Hex(),
		MovieID:    movieID,
		Filename:   filename,
		MimeType:   mimeType,
		Size:       size,
		UploadedAt: time.Now(),
	}, nil
}

// ByMovieID downloads the newest poster stored for a movie.
func (ps *PosterStorage) ByMovieID(ctx context.Context, movieID string) ([]byte, *PosterFile, error) {
	filter := bson.M{"metadata.movie_id": movieID}
	findOpts := options.GridFSFind().SetSort(bson.M{"uploadDate": -1}).SetLimit(1)

	cursor, err := ps.gridFS.FindContext(ctx, filter, findOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("poster lookup failed: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return nil, nil, fmt.Errorf("no poster for movie %s", movieID)
	}

	var file struct {
		ID       primitive.ObjectID `bson:"_id"`
		Filename string             `bson:"filename"`
		Length   int64              `bson:"length"`
		Metadata struct {
			MimeType   string    `bson:"mime_type"`
			UploadedAt time.Time `bson:"uploaded_at"`
		} `bson:"metadata"`
	}
	if err := cursor.Decode(&file); err != nil {
		return nil, nil, fmt.Errorf("poster decode failed: %w", err)
	}

	var buf bytes.Buffer
	if _, err := ps.gridFS.DownloadToStream(file.ID, &buf); err != nil {
		return nil, nil, fmt.Errorf("poster download failed: %w", err)
	}

	return buf.Bytes(), &PosterFile{
		ID:         file.ID.Hex(),
		MovieID:    movieID,
		Filename:   file.Filename,
		MimeType:   file.Metadata.MimeType,
		Size:       file.Length,
		UploadedAt: file.Metadata.UploadedAt,
	}, nil
}

func (ps *PosterStorage) Delete(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid file ID: %w", err)
	}
	if err := ps.gridFS.Delete(objectID); err != nil {
		return fmt.Errorf("poster delete failed: %w", err)
	}
	return nil
}
