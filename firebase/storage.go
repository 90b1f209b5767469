package firebase

import "mime/multipart"

// StorageClient abstracts Firebase Storage operations for dependency injection and testing.
type StorageClient interface {
	UploadBusinessImage(file multipart.File, filename, contentType string) (string, error)
	UploadBlogImage(file multipart.File, filename, contentType string) (string, error)
	DeleteFile(objectPath string) error
}

// FirebaseStorageClient is the real implementation that delegates to package-level functions.
type FirebaseStorageClient struct{}

func NewStorageClient() StorageClient {
	return &FirebaseStorageClient{}
}

func (f *FirebaseStorageClient) UploadBusinessImage(file multipart.File, filename, contentType string) (string, error) {
	return UploadBusinessImage(file, filename, contentType)
}

func (f *FirebaseStorageClient) UploadBlogImage(file multipart.File, filename, contentType string) (string, error) {
	return UploadBlogImage(file, filename, contentType)
}

func (f *FirebaseStorageClient) DeleteFile(objectPath string) error {
	return DeleteFile(objectPath)
}
