package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// AppDirName is the directory name used under the platform config dir
const AppDirName = "wordcheck"

// PathResolver locates the dictionary and config files relative to the
// binary, the working directory and the user's config directory
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a resolver anchored at the running executable
func NewPathResolver() (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}
	execDir, err = filepath.EvalSymlinks(execDir)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		homeDir:       homeDir,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppDirName)
		}
		return filepath.Join(homeDir, ".config", AppDirName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppDirName)
	default:
		return filepath.Join(homeDir, ".config", AppDirName)
	}
}

// dictCandidates lists the locations tried for a dictionary path, in order
func (pr *PathResolver) dictCandidates(userPath string) []string {
	if filepath.IsAbs(userPath) {
		return []string{userPath}
	}
	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userPath))
	}
	return append(candidates,
		filepath.Join(pr.executableDir, userPath),
		filepath.Join(pr.configDir, userPath),
	)
}

// GetDictPath resolves a dictionary file or chunk directory. When nothing
// exists the cwd-relative candidate is returned so the loader can report it.
func (pr *PathResolver) GetDictPath(userPath string) string {
	candidates := pr.dictCandidates(userPath)
	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Found dictionary at: %s", path)
			return path
		}
		log.Debugf("Dictionary candidate not found: %s", path)
	}
	return candidates[0]
}

// GetConfigPath returns the full path for a config file, falling back to
// other writable locations when the config dir cannot be used
func (pr *PathResolver) GetConfigPath(filename string) string {
	if isWritableDir(pr.configDir) {
		return filepath.Join(pr.configDir, filename)
	}

	fallbackDirs := []string{
		filepath.Join(pr.homeDir, "."+AppDirName),
		filepath.Join(os.TempDir(), AppDirName),
		pr.executableDir,
	}
	for _, dir := range fallbackDirs {
		if isWritableDir(dir) {
			path := filepath.Join(dir, filename)
			log.Warnf("Using fallback config location: %s", path)
			return path
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
