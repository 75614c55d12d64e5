package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strings"
	"syscall"
	"time"

	blang "github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"

	"github.com/Fepozopo/instafilm/pkg/semver"
)

const updateRepo = "Fepozopo/instafilm"

// detectLatestRelease queries the GitHub Releases API and returns the highest
// published, non-prerelease release whose tag carries a semver. It is more
// tolerant of tag naming than the default selfupdate detector. Returns
// (nil, false, nil) when no suitable release exists.
func detectLatestRelease(repo string) (*selfupdate.Release, bool, error) {
	apiURL := fmt.Sprintf("https://api.github.com/repos/%s/releases", repo)
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(apiURL)
	if err != nil {
		return nil, false, fmt.Errorf("github API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, false, fmt.Errorf("github API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed reading github response: %w", err)
	}

	var releases []struct {
		TagName    string `json:"tag_name"`
		Name       string `json:"name"`
		Draft      bool   `json:"draft"`
		Prerelease bool   `json:"prerelease"`
		Assets     []struct {
			Name               string `json:"name"`
			BrowserDownloadURL string `json:"browser_download_url"`
		} `json:"assets"`
	}
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, false, fmt.Errorf("failed to decode github releases: %w", err)
	}

	type candidate struct {
		ver      blang.Version
		assetURL string
	}
	var candidates []candidate

	semverRe := regexp.MustCompile(`v?\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?`)

	for _, r := range releases {
		if r.Draft || r.Prerelease {
			continue
		}
		match := semverRe.FindString(r.TagName)
		if match == "" {
			match = semverRe.FindString(r.Name)
			if match == "" {
				continue
			}
		}
		v, perr := blang.Parse(strings.TrimPrefix(match, "v"))
		if perr != nil {
			continue
		}
		assetURL := ""
		// Prefer assets that look like platform binaries.
		for _, a := range r.Assets {
			nameLower := strings.ToLower(a.Name)
			if strings.Contains(nameLower, "darwin") || strings.Contains(nameLower, "linux") ||
				strings.Contains(nameLower, "windows") || strings.Contains(nameLower, "amd64") ||
				strings.Contains(nameLower, "arm64") {
				assetURL = a.BrowserDownloadURL
				break
			}
			if assetURL == "" {
				assetURL = a.BrowserDownloadURL
			}
		}
		candidates = append(candidates, candidate{ver: v, assetURL: assetURL})
	}

	if len(candidates) == 0 {
		return nil, false, nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ver.GT(candidates[j].ver)
	})
	best := candidates[0]

	return &selfupdate.Release{
		Version:  best.ver,
		AssetURL: best.assetURL,
	}, true, nil
}

// promptLine prints prompt and reads one line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}

// CheckForUpdates compares the running version against the latest GitHub
// release, and on confirmation replaces the current binary and restarts.
func CheckForUpdates() error {
	latest, found, err := detectLatestRelease(updateRepo)
	fmt.Printf("Current version: %s\n", Version)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	if !found || latest == nil {
		fmt.Printf("No releases found for %s.\n", updateRepo)
		return nil
	}
	fmt.Printf("Latest version: %s\n", latest.Version)

	currentVer, parseErr := semver.Parse(Version)
	if parseErr != nil {
		fmt.Printf("warning: could not parse current version %q: %v\n", Version, parseErr)
	}
	latestVer, parseErr := semver.Parse(latest.Version.String())
	if parseErr != nil {
		return fmt.Errorf("could not parse latest version %q: %w", latest.Version, parseErr)
	}

	if !latestVer.GT(currentVer) {
		fmt.Printf("You are already running the latest version: %s.\n", currentVer)
		return nil
	}

	if latest.AssetURL == "" {
		fmt.Printf("A new version (%s) is available but there is no downloadable asset.\n", latestVer)
		fmt.Println("Please visit the project releases page to download the new version.")
		return nil
	}

	answer, perr := promptLine(fmt.Sprintf("A new version (%s) is available. Update now? (y/N): ", latestVer))
	if perr != nil {
		return fmt.Errorf("failed reading input: %w", perr)
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	if answer != "y" && answer != "yes" {
		fmt.Println("Update cancelled.")
		return nil
	}

	fmt.Println("Updating...")
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	// Replace the current process with the updated binary. Exec only returns
	// on error; fall back to starting the new binary as a child.
	argv := append([]string{exe}, os.Args[1:]...)
	if err := syscall.Exec(exe, argv, os.Environ()); err != nil {
		cmd := exec.Command(exe, os.Args[1:]...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if startErr := cmd.Start(); startErr != nil {
			fmt.Printf("Updated to version %s, but failed to restart automatically: %v; fallback start error: %v\n", latestVer, err, startErr)
			fmt.Println("Please restart the application manually.")
			return nil
		}
		os.Exit(0)
	}
	return nil
}
