package analyze

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, time.March, 12, 0, 15, 32, 0, time.FixedZone("", 8*60*60))

func logLine(client string, t time.Time, size string) string {
	return fmt.Sprintf(`%s - - [%s] "GET /file HTTP/1.1" 200 %s "-" "test/1.0"`,
		client, t.Format("02/Jan/2006:15:04:05 -0700"), size)
}

func writeLog(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
