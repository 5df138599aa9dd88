package handlers

import (
	"net/http"
	"runtime"
)

// VersionInfo reports build metadata
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

// VersionHandler returns a handler reporting the build version
func VersionHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:   version,
			GoVersion: runtime.Version(),
		})
	}
}
