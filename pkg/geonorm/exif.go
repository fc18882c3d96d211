package geonorm

import (
	"math"

	"github.com/barasher/go-exiftool"
	"k8s.io/klog/v2"
)

// gpsTolerance is how far, in degrees, an embedded GPS tag may drift from
// the filename coordinates before we warn. Roughly ten meters.
const gpsTolerance = 1e-4

// verifyGPS compares the coordinates embedded in the filename against the
// image's GPS EXIF tags. Purely diagnostic: mismatches warn, missing tags
// are expected (satellite tiles rarely carry EXIF at all).
func verifyGPS(et *exiftool.Exiftool, path string, p ParsedImage) {
	fis := et.ExtractMetadata(path)
	fi := fis[0]
	if fi.Err != nil {
		klog.V(1).Infof("no metadata for %s: %v", path, fi.Err)
		return
	}

	lat, err := fi.GetFloat("GPSLatitude")
	if err != nil {
		klog.V(1).Infof("no GPS latitude for %s: %v", path, err)
		return
	}

	lon, err := fi.GetFloat("GPSLongitude")
	if err != nil {
		klog.V(1).Infof("no GPS longitude for %s: %v", path, err)
		return
	}

	if math.Abs(lat-p.Lat) > gpsTolerance || math.Abs(lon-p.Lon) > gpsTolerance {
		klog.Warningf("%s: name says (%v, %v) but EXIF says (%v, %v)", path, p.Lat, p.Lon, lat, lon)
	}
}
