package metarename

import (
	"fmt"
	"strings"

	"github.com/barasher/go-exiftool"
	"k8s.io/klog/v2"
)

// Metadata holds the raw values of the recognized tags for one file. A field
// is empty when the tag is absent.
type Metadata struct {
	Model            string
	DateTimeOriginal string
	ShutterCount     string
	FocalLength      string
	ShutterSpeed     string
	Aperture         string
	Extension        string
}

func read(path string, et *exiftool.Exiftool) (Metadata, error) {
	fis := et.ExtractMetadata(path)
	fi := fis[0]
	md := Metadata{}

	if fi.Err != nil {
		return md, fmt.Errorf("extract fail for %q: %w", path, fi.Err)
	}

	for k, v := range fi.Fields {
		klog.V(2).Infof("%q=%v", k, v)
	}

	md.Model = field(fi, "Model")
	md.DateTimeOriginal = field(fi, "DateTimeOriginal")
	md.ShutterCount = field(fi, "ShutterCount")
	md.FocalLength = field(fi, "FocalLength")
	md.ShutterSpeed = field(fi, "ShutterSpeed")
	md.Aperture = field(fi, "Aperture")
	md.Extension = field(fi, "FileTypeExtension")

	return md, nil
}

// field returns the string form of a tag value, or "" when the tag is absent.
func field(fi exiftool.FileMetadata, k string) string {
	v, err := fi.GetString(k)
	if err != nil {
		klog.V(1).Infof("no %s: %v", k, err)
		return ""
	}
	return strings.TrimSpace(v)
}
