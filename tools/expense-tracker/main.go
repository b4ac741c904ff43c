// Command expense-tracker is a menu-driven console utility for logging
// expenses in memory: add, list, total, and filter by category. Nothing
// is written to disk; quitting discards the log.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cipher-backend/expense"

	"github.com/olekukonko/tablewriter"
)

const (
	optionAdd    = "1"
	optionList   = "2"
	optionTotal  = "3"
	optionFilter = "4"
	optionExit   = "5"
)

func main() {
	tracker := expense.NewTracker()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		printMenu()
		choice := prompt(scanner, "Enter your choice: ")

		switch choice {
		case optionAdd:
			addExpense(scanner, tracker)
		case optionList:
			printExpenses(tracker.All())
		case optionTotal:
			fmt.Printf("\nTotal expenses: $%.2f\n", tracker.Total())
		case optionFilter:
			category := prompt(scanner, "Enter category to filter: ")
			printExpenses(tracker.ByCategory(category))
		case optionExit:
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice, please try again.")
		}
	}
}

func printMenu() {
	fmt.Println("\nExpense Tracker")
	fmt.Println("1. Add an expense")
	fmt.Println("2. List all expenses")
	fmt.Println("3. Show total expenses")
	fmt.Println("4. Filter expenses by category")
	fmt.Println("5. Exit")
}

func addExpense(scanner *bufio.Scanner, tracker *expense.Tracker) {
	var amount float64
	for {
		parsed, err := parseAmount(prompt(scanner, "Enter amount: "))
		if err == nil {
			amount = parsed
			break
		}
		fmt.Println("Invalid amount, please enter a positive number.")
	}

	var category string
	for {
		category = prompt(scanner, "Enter category: ")
		if category != "" {
			break
		}
		fmt.Println("Category cannot be empty.")
	}

	tracker.Add(amount, category)
	fmt.Printf("✓ Expense of $%.2f added to '%s' category.\n", amount, category)
}

// parseAmount accepts only strictly positive amounts.
func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	return amount, nil
}

func printExpenses(expenses []expense.Expense) {
	if len(expenses) == 0 {
		fmt.Println("No expenses to display.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Amount", "Category"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, e := range expenses {
		table.Append([]string{fmt.Sprintf("$%.2f", e.Amount), e.Category})
	}
	table.Render()
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		// stdin closed, treat as exit
		fmt.Println()
		os.Exit(0)
	}
	return strings.TrimSpace(scanner.Text())
}
