package media

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// allowedExtensions maps each accepted extension to the content type
// assumed when the client does not send one.
var allowedExtensions = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"mp4":  "video/mp4",
}

// ValidationError is returned for requests rejected before any storage call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

var (
	errNoFile         = invalid("No file provided")
	errNoFileSelected = invalid("No file selected")
	errFileType       = invalid("File type not allowed. Only jpg, jpeg, and mp4 are supported")
	errInvalidFolder  = invalid("Invalid folder")
)

// Extension returns the lower-cased text after the last dot of filename,
// or "" when there is none.
func Extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// AllowedFile reports whether filename carries an accepted extension.
func AllowedFile(filename string) bool {
	_, ok := allowedExtensions[Extension(filename)]
	return ok
}

// CheckSize rejects files larger than limit bytes.
func CheckSize(size, limit int64) error {
	if size > limit {
		return fileTooLarge(limit)
	}
	return nil
}

func fileTooLarge(limit int64) *ValidationError {
	return invalid("File too large. Maximum size is %s", humanize.IBytes(uint64(limit)))
}

// NormaliseFolder trims whitespace and slashes and drops empty or "."
// segments. A ".." segment is rejected.
func NormaliseFolder(folder string) (string, error) {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		return "", nil
	}

	var segments []string
	for _, seg := range strings.Split(folder, "/") {
		seg = strings.TrimSpace(seg)
		switch seg {
		case "", ".":
			continue
		case "..":
			return "", errInvalidFolder
		}
		segments = append(segments, seg)
	}
	return strings.Join(segments, "/"), nil
}

// StoragePath joins folder and name; an empty folder means the bucket root.
func StoragePath(folder, name string) string {
	if folder == "" {
		return name
	}
	return path.Join(folder, name)
}

// UniqueName returns a random object name keeping ext.
func UniqueName(ext string) string {
	return uuid.NewString() + "." + ext
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces filename to a safe ASCII form: accents are
// folded, path separators and whitespace become "_", other characters are
// dropped, and leading or trailing dots and underscores are removed.
func SanitizeFilename(filename string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(filename) {
		if r > unicode.MaxASCII {
			continue
		}
		b.WriteRune(r)
	}
	s := strings.NewReplacer("/", " ", `\`, " ").Replace(b.String())
	s = strings.Join(strings.Fields(s), "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	return strings.Trim(s, "._")
}

// contentTypeFor picks the client-declared type, else the one implied by ext.
// The generic octet-stream type counts as undeclared.
func contentTypeFor(declared, ext string) string {
	if declared = strings.TrimSpace(declared); declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if ct, ok := allowedExtensions[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}
