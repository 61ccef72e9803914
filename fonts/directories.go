// seehuhn.de/go/pptx - a library for reading and writing PowerPoint files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fonts

import (
	"os"
	"path/filepath"
	"runtime"
)

// Directories returns the directories searched for installed fonts on
// the current platform.  Directories which do not exist are included in
// the list; Scan ignores them.
func Directories() []string {
	return directories(runtime.GOOS)
}

func directories(goos string) []string {
	switch goos {
	case "darwin":
		dirs := []string{
			"/Library/Fonts",
			"/Network/Library/Fonts",
			"/System/Library/Fonts",
		}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs,
				filepath.Join(home, "Library", "Fonts"),
				filepath.Join(home, ".fonts"),
			)
		}
		return dirs
	case "windows":
		windir := os.Getenv("windir")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs := []string{filepath.Join(windir, "Fonts")}
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			dirs = append(dirs,
				filepath.Join(localAppData, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	default:
		// linux and the other unixes
		dirs := []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
		}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs,
				filepath.Join(home, ".fonts"),
				filepath.Join(home, ".local", "share", "fonts"),
			)
		}
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			dirs = append(dirs, filepath.Join(xdgData, "fonts"))
		}
		return dirs
	}
}
