package service

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader 构造一个上传文件头，走真实的 multipart 编解码
func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSecureFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"movie.mp4", "movie.mp4"},
		{"../../evil.sh", "evil.sh"},
		{`..\..\evil.sh`, "evil.sh"},
		{"/etc/passwd", "passwd"},
		{"movie poster.jpg", "movie_poster.jpg"},
		{"中文名.jpg", "jpg"},
		{"...", ""},
		{"  ", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, secureFilename(tc.in), "输入 %q", tc.in)
	}
}

func TestGenerateName(t *testing.T) {
	name := generateName("evil.sh")
	// 秒级时间戳 + 32 位随机标识 + 原扩展名
	assert.Regexp(t, regexp.MustCompile(`^\d{14}[0-9a-f]{32}\.sh$`), name)
	assert.NotContains(t, name, "/")

	// 每次生成都不同
	assert.NotEqual(t, name, generateName("evil.sh"))
}

func TestUploaderSave_TraversalFilename(t *testing.T) {
	dir := t.TempDir()
	u := NewUploader(dir)

	name, err := u.Save(fileHeader(t, "../../evil.sh", "echo pwned"))
	require.NoError(t, err)

	// 生成名不含任何路径成分，落盘只能在上传目录内
	assert.Equal(t, name, filepath.Base(name))
	assert.True(t, strings.HasSuffix(name, ".sh"))

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "echo pwned", string(data))
}

func TestUploaderSave_EmptyAfterCleaning(t *testing.T) {
	u := NewUploader(t.TempDir())

	_, err := u.Save(fileHeader(t, "...", "x"))
	assert.Error(t, err)
}

func TestUploaderRemove(t *testing.T) {
	dir := t.TempDir()
	u := NewUploader(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.jpg"), []byte("x"), 0o644))

	// 拒绝带路径的名字
	assert.Error(t, u.Remove("../old.jpg"))
	assert.FileExists(t, filepath.Join(dir, "old.jpg"))

	require.NoError(t, u.Remove("old.jpg"))
	assert.NoFileExists(t, filepath.Join(dir, "old.jpg"))

	// 文件不存在时静默成功
	assert.NoError(t, u.Remove("gone.jpg"))
}
