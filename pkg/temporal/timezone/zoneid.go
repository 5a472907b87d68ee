package timezone

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// zoneInfoDirs are searched for zone files when building the case
// insensitive index. They mirror the locations the time package reads.
var zoneInfoDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
	"/etc/zoneinfo",
}

// zoneIndex maps lower-cased IANA ids to their canonical spelling.
type zoneIndex struct {
	once sync.Once
	fs   afero.Fs
	dirs []string
	ids  map[string]string
}

func newZoneIndex(fsys afero.Fs, dirs []string) *zoneIndex {
	if dir := os.Getenv("ZONEINFO"); dir != "" {
		dirs = append([]string{dir}, dirs...)
	}
	return &zoneIndex{fs: fsys, dirs: dirs}
}

func (x *zoneIndex) build() {
	x.ids = map[string]string{}
	for _, dir := range x.dirs {
		_ = afero.Walk(x.fs, dir, func(path string, info fs.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return nil
			}
			id := filepath.ToSlash(rel)
			// skip right/, posix/ and the tab files next to the zones
			if first := id[0]; first < 'A' || first > 'Z' || strings.Contains(id, ".") {
				return nil
			}
			if _, ok := x.ids[strings.ToLower(id)]; !ok {
				x.ids[strings.ToLower(id)] = id
			}
			return nil
		})
	}
}

// lookup returns the canonical spelling of id when a zone file exists.
func (x *zoneIndex) lookup(id string) (string, bool) {
	x.once.Do(x.build)
	canon, ok := x.ids[strings.ToLower(id)]
	return canon, ok
}

// irregular spellings the title-case rule gets wrong
var zoneWords = map[string]string{
	"etc":            "Etc",
	"mcmurdo":        "McMurdo",
	"dumontdurville": "DumontDUrville",
	"comodrivadavia": "ComodRivadavia",
	"knox_in":        "Knox_IN",
	"denoronha":      "DeNoronha",
	"easterisland":   "EasterIsland",
	"bajanorte":      "BajaNorte",
	"bajasur":        "BajaSur",
	"gb-eire":        "GB-Eire",
	"nz-chat":        "NZ-CHAT",
	"w-su":           "W-SU",
	"utc":            "UTC",
	"uct":            "UCT",
	"gmt":            "GMT",
}

var zoneLowerWords = map[string]bool{"of": true, "es": true, "au": true, "de": true, "da": true, "del": true}

// titleZoneID spells a zone id the way the IANA database does for the
// regular cases: "america/port-au-prince" becomes "America/Port-au-Prince".
func titleZoneID(id string) string {
	segs := strings.Split(strings.ToLower(id), "/")
	for i, seg := range segs {
		if w, ok := zoneWords[seg]; ok {
			segs[i] = w
			continue
		}
		if i == 0 && len(seg) <= 3 || strings.ContainsAny(seg, "0123456789") {
			segs[i] = strings.ToUpper(seg)
			continue
		}
		var b strings.Builder
		start := true
		for j, r := range seg {
			if start {
				word := seg[j:]
				if k := strings.IndexAny(word, "_-"); k >= 0 {
					word = word[:k]
				}
				if j == 0 || !zoneLowerWords[word] {
					r = []rune(strings.ToUpper(string(r)))[0]
				}
			}
			b.WriteRune(r)
			start = r == '_' || r == '-'
		}
		segs[i] = b.String()
	}
	return strings.Join(segs, "/")
}
