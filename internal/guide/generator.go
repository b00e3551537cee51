package guide

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mr-Neutr0n/travel-agent-ai/internal/domain"
)

const DefaultOutputDir = "travel_guides"

// Generator renders travel records into paginated PDF guides. It is
// synchronous and stateless across calls; each invocation writes exactly one
// file.
type Generator struct {
	outDir string
	styles StyleSheet
	now    func() time.Time
}

func NewGenerator(outDir string) *Generator {
	if outDir == "" {
		outDir = DefaultOutputDir
	}
	return &Generator{outDir: outDir, styles: DefaultStyles(), now: time.Now}
}

// Generate writes the guide for destination and returns its path. Missing or
// empty record fields degrade to fewer sections, never to an error; the only
// failure modes are directory creation and file write.
//
// The filename is a pure function of destination and current date, so a
// second call for the same destination on the same day overwrites the first
// file. That is intentional: the guide is a snapshot, not a versioned
// artifact.
func (g *Generator) Generate(destination string, rec domain.TravelRecord) (string, error) {
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", g.outDir, err)
	}
	now := g.now()
	path := filepath.Join(g.outDir, filename(destination, now))
	story := buildStory(destination, rec, now)
	if err := renderPDF(path, story, g.styles); err != nil {
		return "", fmt.Errorf("write guide %s: %w", path, err)
	}
	return path, nil
}

var destSanitizer = strings.NewReplacer(" ", "", ",", "")

// filename strips spaces and commas from the destination and stamps the
// current date: "Kyoto, Japan" -> "KyotoJapan_Travel_Guide_20260831.pdf".
func filename(destination string, t time.Time) string {
	return destSanitizer.Replace(destination) + "_Travel_Guide_" + t.Format("20060102") + ".pdf"
}
