package logger

import (
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/op/go-logging"
)

const (
	_10MB = int64(10 * 1024 * 1024)
	_50MB = int64(50 * 1024 * 1024)
)

// UploadProgress logs how far an object upload has got. minio-go calls Read
// with each chunk it has sent when the value is passed as
// PutObjectOptions.Progress. Multipart uploads call Read from several
// goroutines at once.
type UploadProgress struct {
	mu             sync.Mutex
	logger         *logging.Logger
	key            string
	fileSize       int64
	sentBytes      int64
	lastPctPrinted float64
}

// NewUploadProgress creates an UploadProgress for an object of fileSize bytes.
func NewUploadProgress(logger *logging.Logger, key string, fileSize int64) *UploadProgress {
	return &UploadProgress{
		logger:   logger,
		key:      key,
		fileSize: fileSize,
	}
}

// Read records len(p) more bytes as sent and logs when enough progress was made.
func (u *UploadProgress) Read(p []byte) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.sentBytes += int64(len(p))
	if u.fileSize <= 0 {
		return len(p), nil
	}

	pct := float64(u.sentBytes) / float64(u.fileSize) * 100
	if u.shouldPrint(pct) {
		u.logger.Infof("upload %s: %s of %s, %3.0f%% complete",
			u.key, humanize.IBytes(uint64(u.sentBytes)), humanize.IBytes(uint64(u.fileSize)), pct)
		u.lastPctPrinted = pct
	}
	return len(p), nil
}

// SentBytes returns the number of bytes reported so far.
func (u *UploadProgress) SentBytes() int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sentBytes
}

// Small files upload quickly and are not worth logging. Larger ones log
// every quarter, the largest every tenth.
func (u *UploadProgress) shouldPrint(pct float64) bool {
	diff := pct - u.lastPctPrinted
	if u.fileSize > _50MB {
		return diff >= 10.0
	}
	if u.fileSize > _10MB {
		return diff >= 25.0
	}
	return false
}
