package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"max.ks1230/expense-tracker/internal/entity/budget"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/users"
)

const (
	welcomeMessage    = "--- Welcome to your Personal Expense Tracker! ---"
	goodbyeMessage    = "Goodbye! Thanks for tracking your finances with us."
	noExpensesMessage = "No expenses recorded yet. Start by adding one!"
	invalidChoice     = "Invalid choice. Please try again."
)

type appConfig interface {
	Currency() string
	Categories() []string
}

type recordStorage interface {
	LoadExpenses(location string) []expense.Record
	SaveExpenses(location string, records []expense.Record) error
	LoadBudgets(location string) *budget.Map
	SaveBudgets(location string, budgets *budget.Map) error
}

type userRegistry interface {
	List() []string
	Create(username string) (users.Session, error)
	Select(username string) (users.Session, error)
	Delete(username string) error
	Reset(username string) error
	Active() (users.Session, bool)
}

type handler func(session users.Session) error

// Service is the interactive menu loop. It owns no expense logic of its
// own: every choice loads the active user's stores, routes through the
// model packages, and persists the result.
type Service struct {
	conf     appConfig
	storage  recordStorage
	registry userRegistry

	in      *bufio.Scanner
	out     io.Writer
	printer *message.Printer

	handlersMap map[string]handler
}

func New(conf appConfig, storage recordStorage, registry userRegistry, in io.Reader, out io.Writer) *Service {
	s := &Service{
		conf:     conf,
		storage:  storage,
		registry: registry,
		in:       bufio.NewScanner(in),
		out:      out,
		printer:  message.NewPrinter(language.English),
	}
	s.handlersMap = newMap(s)
	return s
}

func newMap(s *Service) map[string]handler {
	m := make(map[string]handler)
	m["1"] = s.handleAddExpense
	m["2"] = s.handleSummary
	m["3"] = s.handleManage
	m["4"] = s.handleSetBudget
	m["5"] = s.handleCheckBudgets
	m["6"] = s.handleReset
	return m
}

// Run drives the whole session: pick or create a user, then loop over
// the dashboard until the user quits or input runs out.
func (s *Service) Run() {
	s.println(welcomeMessage)

	if !s.userManagement() {
		s.println("Exiting. Select or create a user to proceed next time.")
		return
	}

	for {
		session, ok := s.registry.Active()
		if !ok {
			break
		}
		s.printDashboard(session)

		choice, err := s.readLine()
		if err != nil {
			return
		}

		if h, ok := s.handlersMap[choice]; ok {
			if err := h(session); err != nil {
				logger.Error("operation failed", zap.String("choice", choice), zap.Error(err))
				s.println("Sorry, that didn't work: " + err.Error())
			}
			continue
		}

		switch choice {
		case "7":
			if !s.userManagement() {
				s.println(goodbyeMessage)
				return
			}
		case "8":
			s.println(goodbyeMessage)
			return
		default:
			s.println(invalidChoice)
		}
	}
}

func (s *Service) printDashboard(session users.Session) {
	s.println("")
	s.println("--- " + session.Username + "'s Dashboard ---")
	s.println("  1. Add a New Expense")
	s.println("  2. View Expense Summary")
	s.println("  3. Manage (Edit/Delete) Expenses")
	s.println("  4. Set Category Budget")
	s.println("  5. Check Budgets")
	s.println("  6. Reset My Data")
	s.println("  7. Switch User / User Management")
	s.println("  8. Exit")
	s.print("Please choose an option: ")
}

// userManagement runs the user picker. It returns true once a user is
// active, false when the user backs out without selecting anyone.
func (s *Service) userManagement() bool {
	for {
		known := s.registry.List()

		s.println("")
		s.println("--- User Management ---")
		if len(known) == 0 {
			s.println("No users found. Let's create one!")
		} else {
			for i, username := range known {
				s.println(fmt.Sprintf("  %d. %s", i+1, username))
			}
		}
		s.println("Options: 1. Select user  2. Create user  3. Delete user  4. Back")
		s.print("Your choice: ")

		choice, err := s.readLine()
		if err != nil {
			return false
		}

		switch choice {
		case "1":
			if s.selectUser(known) {
				return true
			}
		case "2":
			if s.createUser() {
				return true
			}
		case "3":
			s.deleteUser(known)
		case "4":
			_, active := s.registry.Active()
			return active
		default:
			s.println(invalidChoice)
		}
	}
}

func (s *Service) selectUser(known []string) bool {
	if len(known) == 0 {
		s.println("No users to select. Please create a user first.")
		return false
	}
	idx, ok := s.promptIndex("Enter the number of the user to select: ", len(known))
	if !ok {
		return false
	}
	session, err := s.registry.Select(known[idx])
	if err != nil {
		s.println("Could not select user: " + err.Error())
		return false
	}
	s.println("Welcome back, " + session.Username + "!")
	return true
}

func (s *Service) createUser() bool {
	s.print("Enter a new username (letters and numbers only): ")
	username, err := s.readLine()
	if err != nil {
		return false
	}
	session, err := s.registry.Create(username)
	if err != nil {
		s.println("Could not create user: " + err.Error())
		return false
	}
	s.println("User '" + session.Username + "' created and selected.")
	return true
}

func (s *Service) deleteUser(known []string) {
	if len(known) == 0 {
		s.println("No users to delete.")
		return
	}
	idx, ok := s.promptIndex("Enter the number of the user to DELETE: ", len(known))
	if !ok {
		return
	}
	username := known[idx]
	if !s.confirm("Delete user '" + username + "' and ALL their data? This cannot be undone (y/n): ") {
		s.println("User deletion cancelled.")
		return
	}
	if err := s.registry.Delete(username); err != nil {
		s.println("Could not delete user: " + err.Error())
		return
	}
	s.println("User '" + username + "' has been completely deleted.")
}

func (s *Service) amount(v float64) string {
	return s.printer.Sprintf("%s%.2f", s.conf.Currency(), v)
}

func (s *Service) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

func (s *Service) print(text string) {
	_, _ = fmt.Fprint(s.out, text)
}

func (s *Service) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Service) confirm(prompt string) bool {
	s.print(prompt)
	answer, err := s.readLine()
	if err != nil {
		return false
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

func (s *Service) promptIndex(prompt string, n int) (int, bool) {
	s.print(prompt)
	text, err := s.readLine()
	if err != nil {
		return 0, false
	}
	idx, err := strconv.Atoi(text)
	if err != nil || idx < 1 || idx > n {
		s.println("Invalid number. Please enter a valid number from the list.")
		return 0, false
	}
	return idx - 1, true
}
