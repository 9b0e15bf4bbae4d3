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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package web

import (
	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/ginkgo/v2/types"
	. "github.com/onsi/gomega"
)

// LaunchBrowserWithCleanup launches the configured browser and closes it when
// the enclosing node's cleanup runs.  Call it from BeforeSuite.
func LaunchBrowserWithCleanup(config *Config) *Browser {
	browser, err := LaunchBrowser(config)
	Expect(err).NotTo(HaveOccurred(), "Should launch %s", config.Browser)

	DeferCleanup(func() {
		if err := browser.Close(); err != nil {
			GinkgoWriter.Printf("Warning: failed to close browser: %v\n", err)
		}
	})

	return browser
}

// PhaseForNodeType maps the node a spec failed in to a Phase.
func PhaseForNodeType(nodeType types.NodeType) Phase {
	switch {
	case nodeType.Is(types.NodeTypeIt):
		return PhaseCall
	case nodeType.Is(types.NodeTypeBeforeEach | types.NodeTypeJustBeforeEach | types.NodeTypeBeforeAll):
		return PhaseSetup
	default:
		return PhaseTeardown
	}
}

// NewPageWithCleanup opens a test scoped page.  When the spec finishes the
// observers are told about any failure, then the page and its context are
// closed on every exit path.
func NewPageWithCleanup(browser *Browser, observers ...FailureObserver) *PageSession {
	session, err := browser.NewPageSession()
	Expect(err).NotTo(HaveOccurred(), "Should open a browser page")

	DeferCleanup(func() {
		report := CurrentSpecReport()

		NotifyFailure(session, TestOutcome{
			Name:   report.FullText(),
			Phase:  PhaseForNodeType(report.Failure.FailureNodeType),
			Failed: report.Failed(),
		}, observers...)

		if err := session.Close(); err != nil {
			GinkgoWriter.Printf("Warning: failed to close page: %v\n", err)
		}
	})

	return session
}
