package service_test

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/infras/otel/mocks"
	s3Mocks "resort/infras/s3/mocks"
	"resort/internal/domains/media/model"
	"resort/internal/domains/media/model/dto"
	"resort/internal/domains/media/service"
)

func newService(t *testing.T) (service.Media, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	return service.New(mocks.NewOtel(), mockS3), mockS3
}

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
		Size:     size,
	}
}

func TestMediaService_Upload(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UploadImageRequest
		setupMock func(m *s3Mocks.MockS3)
		wantErr   bool
	}{
		{
			name: "default directory keeps extension",
			req:  dto.UploadImageRequest{Image: fileHeader("Beach.JPG", "image/jpeg", 2048)},
			setupMock: func(m *s3Mocks.MockS3) {
				m.EXPECT().
					Put(gomock.Any(), gomock.Any(), gomock.Any(), int64(2048), "image/jpeg").
					DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ int64, _ string) (string, error) {
						assert.True(t, strings.HasPrefix(key, model.DirectoryGeneral+"/"))
						assert.True(t, strings.HasSuffix(key, ".jpg"))

						return "https://cdn.example.com/" + key, nil
					})
			},
		},
		{
			name: "hotel directory",
			req:  dto.UploadImageRequest{Directory: model.DirectoryHotel, Image: fileHeader("lobby.png", "image/png", 10)},
			setupMock: func(m *s3Mocks.MockS3) {
				m.EXPECT().
					Put(gomock.Any(), gomock.Cond(func(key any) bool {
						return strings.HasPrefix(key.(string), "hotels/")
					}), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/hotels/x.png", nil)
			},
		},
		{
			name: "upload error",
			req:  dto.UploadImageRequest{Image: fileHeader("a.png", "image/png", 10)},
			setupMock: func(m *s3Mocks.MockS3) {
				m.EXPECT().
					Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 upload error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockS3 := newService(t)
			tt.setupMock(mockS3)

			res, err := svc.Upload(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.URL)
			assert.Equal(t, tt.req.Image.Filename, res.FileName)
		})
	}
}

func TestMediaService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		urls      []string
		setupMock func(m *s3Mocks.MockS3)
		wantErr   bool
	}{
		{
			name: "deletes by object key",
			urls: []string{"https://cdn.example.com/hotels/a.jpg"},
			setupMock: func(m *s3Mocks.MockS3) {
				m.EXPECT().KeyFromURL("https://cdn.example.com/hotels/a.jpg").Return("hotels/a.jpg")
				m.EXPECT().Delete(gomock.Any(), "hotels/a.jpg").Return(nil)
			},
		},
		{
			name: "foreign url is skipped",
			urls: []string{"https://elsewhere.com/a.jpg"},
			setupMock: func(m *s3Mocks.MockS3) {
				m.EXPECT().KeyFromURL(gomock.Any()).Return("")
			},
		},
		{
			name: "batch failure",
			urls: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
			setupMock: func(m *s3Mocks.MockS3) {
				m.EXPECT().KeyFromURL("https://cdn.example.com/a.jpg").Return("a.jpg")
				m.EXPECT().KeyFromURL("https://cdn.example.com/b.jpg").Return("b.jpg")
				m.EXPECT().Delete(gomock.Any(), "a.jpg", "b.jpg").Return(errors.New("failed to delete 1 of 2 objects"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockS3 := newService(t)
			tt.setupMock(mockS3)

			err := svc.Delete(context.Background(), dto.DeleteImagesRequest{ImageURLs: tt.urls})
			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrDeleteImages)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMediaService_DeleteLater(t *testing.T) {
	svc, mockS3 := newService(t)

	done := make(chan struct{})
	mockS3.EXPECT().KeyFromURL("https://cdn.example.com/rooms/r.jpg").Return("rooms/r.jpg")
	mockS3.EXPECT().Delete(gomock.Any(), "rooms/r.jpg").DoAndReturn(func(context.Context, ...string) error {
		close(done)

		return nil
	})

	svc.DeleteLater(context.Background(), "", "https://cdn.example.com/rooms/r.jpg")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("images were not deleted")
	}
}
