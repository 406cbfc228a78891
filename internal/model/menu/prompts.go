package menu

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/users"
)

func (s *Service) promptAmount(prompt string) (float64, bool) {
	for {
		s.print(prompt)
		text, err := s.readLine()
		if err != nil {
			return 0, false
		}
		amount, err := strconv.ParseFloat(text, 64)
		// ParseFloat happily accepts "nan" and "inf".
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			s.println("Invalid input. Please enter a valid number for the amount.")
			continue
		}
		if amount <= 0 {
			s.println("Amount must be a positive number. Please try again.")
			continue
		}
		return amount, true
	}
}

func (s *Service) promptLimit(prompt string) (float64, bool) {
	for {
		s.print(prompt)
		text, err := s.readLine()
		if err != nil {
			return 0, false
		}
		limit, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(limit) || math.IsInf(limit, 0) {
			s.println("Invalid amount. Please enter a number.")
			continue
		}
		if limit < 0 {
			s.println("Budget limit cannot be negative.")
			continue
		}
		return limit, true
	}
}

// promptDate accepts YYYY-MM-DD or the shortcuts 'today' and
// 'yesterday'. Blank keeps the fallback (or today when there is none).
func (s *Service) promptDate(prompt, fallback string) (string, bool) {
	def := fallback
	if def == "" {
		def = "today"
	}
	for {
		s.print(fmt.Sprintf("%s (YYYY-MM-DD, 'today', 'yesterday') [default: %s]: ", prompt, def))
		text, err := s.readLine()
		if err != nil {
			return "", false
		}
		switch strings.ToLower(text) {
		case "":
			if fallback != "" {
				return fallback, true
			}
			return today(), true
		case "today":
			return today(), true
		case "yesterday":
			return yesterday(), true
		}
		if _, err := time.Parse(expense.DateLayout, text); err != nil {
			s.println("Oops! Invalid date format. Please use YYYY-MM-DD, 'today', or 'yesterday'.")
			continue
		}
		return text, true
	}
}

// promptCategory offers the configured quick picks by number, or a
// custom name. Custom input is fuzzy-matched against categories the
// user already uses so typos don't split a category in two.
func (s *Service) promptCategory(session users.Session) (string, bool) {
	common := s.conf.Categories()

	s.println("")
	s.println("--- Choose a Category ---")
	for i, category := range common {
		s.println(fmt.Sprintf("  %d. %s", i+1, category))
	}
	s.println("  'C' for Custom Category")

	for {
		s.print("Enter category number or 'C' for custom: ")
		choice, err := s.readLine()
		if err != nil {
			return "", false
		}
		if strings.EqualFold(choice, "c") {
			return s.promptCustomCategory(session)
		}
		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(common) {
			s.println("Invalid choice. Please enter a number or 'C'.")
			continue
		}
		return common[idx-1], true
	}
}

func (s *Service) promptCustomCategory(session users.Session) (string, bool) {
	for {
		s.print("Enter your custom category name: ")
		text, err := s.readLine()
		if err != nil {
			return "", false
		}
		category := expense.NormalizeCategory(text)
		if category == "" {
			s.println("Custom category cannot be empty. Please try again.")
			continue
		}

		if match := s.closestKnownCategory(session, category); match != "" {
			if s.confirm("Did you mean '" + match + "'? (y/n): ") {
				return match, true
			}
		}
		return category, true
	}
}

// closestKnownCategory fuzzy-matches the input against the categories
// already present in the user's expenses and budgets.
func (s *Service) closestKnownCategory(session users.Session, category string) string {
	known := make([]string, 0)
	seen := map[string]bool{category: true}

	for _, rec := range s.storage.LoadExpenses(session.ExpensesLocation) {
		if !seen[rec.Category] {
			seen[rec.Category] = true
			known = append(known, rec.Category)
		}
	}
	for _, c := range s.storage.LoadBudgets(session.BudgetsLocation).Categories() {
		if !seen[c] {
			seen[c] = true
			known = append(known, c)
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(category, known)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}
