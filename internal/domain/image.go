package domain

// Image — объект изображения для загрузки в S3-хранилище.
type Image struct {
	ObjectKey string
	Bytes     []byte
	Size      int64
	MimeType  string
}

func NewImage(objectKey string, bytes []byte, size int64, mimeType string) *Image {
	return &Image{
		ObjectKey: objectKey,
		Bytes:     bytes,
		Size:      size,
		MimeType:  mimeType,
	}
}
