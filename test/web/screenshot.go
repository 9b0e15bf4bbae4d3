/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package web

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/onsi/ginkgo/v2"
)

// Phase is the part of a spec that failed.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseCall     Phase = "call"
	PhaseTeardown Phase = "teardown"
)

// TestOutcome describes a finished spec.
type TestOutcome struct {
	// Name is the full spec text.
	Name   string
	Phase  Phase
	Failed bool
}

// FailureObserver is notified after a spec fails, while its page is still open.
// Observers are diagnostic only and must not fail the spec themselves.
type FailureObserver interface {
	OnFailure(page Page, outcome TestOutcome)
}

// FailureObserverFunc adapts a function to a FailureObserver.
type FailureObserverFunc func(page Page, outcome TestOutcome)

func (f FailureObserverFunc) OnFailure(page Page, outcome TestOutcome) {
	f(page, outcome)
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeName makes a spec name safe to use as a file name.
func SanitizeName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// ScreenshotPath returns {dir}/{name}_{phase}.png.
func ScreenshotPath(dir, name string, phase Phase) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", SanitizeName(name), phase))
}

// ScreenshotObserver writes a full page screenshot of a failed spec.
type ScreenshotObserver struct {
	Dir string
}

// NewScreenshotObserver returns an observer writing to dir, or the default
// directory when dir is empty.
func NewScreenshotObserver(dir string) *ScreenshotObserver {
	if dir == "" {
		dir = DefaultScreenshotDir
	}

	return &ScreenshotObserver{
		Dir: dir,
	}
}

// Capture writes the screenshot and returns its path.
func (o *ScreenshotObserver) Capture(page Page, outcome TestOutcome) (string, error) {
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating screenshot directory: %w", err)
	}

	path := ScreenshotPath(o.Dir, outcome.Name, outcome.Phase)

	if err := page.Screenshot(path); err != nil {
		return "", err
	}

	return path, nil
}

// OnFailure captures a screenshot, logging rather than returning any error so
// the original failure is what gets reported.
func (o *ScreenshotObserver) OnFailure(page Page, outcome TestOutcome) {
	path, err := o.Capture(page, outcome)
	if err != nil {
		ginkgo.GinkgoWriter.Printf("Failed to capture screenshot: %v\n", err)
		return
	}

	ginkgo.GinkgoWriter.Printf("Screenshot saved: %s\n", path)
}

// NotifyFailure calls every observer for a failed outcome.  A panicking
// observer is logged and does not stop the others.
func NotifyFailure(page Page, outcome TestOutcome, observers ...FailureObserver) {
	if !outcome.Failed {
		return
	}

	for _, observer := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					ginkgo.GinkgoWriter.Printf("Failure observer panicked: %v\n", r)
				}
			}()

			observer.OnFailure(page, outcome)
		}()
	}
}
