// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervisor

import (
	"fmt"
	"strings"
	"time"

	"github.com/matt-FFFFFF/prun/internal/color"
	"github.com/matt-FFFFFF/prun/internal/logline"
)

const ruleWidth = 50

// writeSummary prints the execution summary table, one row per result in submission order.
func (s *Supervisor) writeSummary(results Results, width int, elapsed time.Duration) {
	rule := s.styler.Wrap(strings.Repeat("─", ruleWidth), color.Gray)

	s.println("")
	s.println(s.styler.Wrap("📊 Execution Summary:", color.BoldText, color.Blue))
	s.println(rule)

	for _, r := range results {
		status := s.styler.Wrap("❌ FAILED", color.Red)
		if r.Success {
			status = s.styler.Wrap("✅ SUCCESS", color.Green)
		}

		s.println(logline.FitName(r.Service, width) + " | " + status)
	}

	s.println(rule)
	s.println(s.styler.Wrap(fmt.Sprintf("⏱️  Total time: %.2fs", elapsed.Seconds()), color.BoldText))

	if failed := results.Failed(); failed > 0 {
		s.println(s.styler.Wrap(fmt.Sprintf("❌ %d command(s) failed", failed), color.Red))
		return
	}

	s.println(s.styler.Wrap(fmt.Sprintf("✅ All %d command(s) completed successfully", len(results)), color.Green))
}
