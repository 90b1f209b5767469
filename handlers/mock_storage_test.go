package handlers

import "mime/multipart"

type mockStorage struct {
	UploadBusinessImageFn func(file multipart.File, filename, contentType string) (string, error)
	UploadBlogImageFn     func(file multipart.File, filename, contentType string) (string, error)
	DeleteFileFn          func(objectPath string) error
	DeleteFileCalls       []string
	UploadCallCount       int
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		DeleteFileCalls: []string{},
	}
}

func (m *mockStorage) UploadBusinessImage(file multipart.File, filename, contentType string) (string, error) {
	m.UploadCallCount++
	if m.UploadBusinessImageFn != nil {
		return m.UploadBusinessImageFn(file, filename, contentType)
	}
	return "https://storage.googleapis.com/test-bucket/businesses/test_image.jpg", nil
}

func (m *mockStorage) UploadBlogImage(file multipart.File, filename, contentType string) (string, error) {
	m.UploadCallCount++
	if m.UploadBlogImageFn != nil {
		return m.UploadBlogImageFn(file, filename, contentType)
	}
	return "https://storage.googleapis.com/test-bucket/blog/test_image.jpg", nil
}

func (m *mockStorage) DeleteFile(objectPath string) error {
	m.DeleteFileCalls = append(m.DeleteFileCalls, objectPath)
	if m.DeleteFileFn != nil {
		return m.DeleteFileFn(objectPath)
	}
	return nil
}
