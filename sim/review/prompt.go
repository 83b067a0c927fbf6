package review

import (
	"fmt"
	"strings"
)

// Prompt builds the critic prompt for one day.
func Prompt(req Request) string {
	var sb strings.Builder
	sb.WriteString("You are a picky but funny street-food blogger. The player runs a \"Tasty Shawarma\" stall.\n")
	fmt.Fprintf(&sb, "Today is day %d.\n", req.DayNumber)
	sb.WriteString("Numbers for today:\n")
	fmt.Fprintf(&sb, "- Customers served: %d\n", req.ServedCount)
	fmt.Fprintf(&sb, "- Customers who left angry: %d\n", req.FailedCount)
	fmt.Fprintf(&sb, "- Money earned: $%d\n", req.MoneyEarned)
	fmt.Fprintf(&sb, "- Perfect orders: %d\n", req.PerfectOrders)
	sb.WriteString("\nWrite a short review (under 100 words).\n")
	sb.WriteString("If they earned a lot and failed rarely, praise them as a street-food legend whose wraps make mouths water.\n")
	sb.WriteString("If many customers failed, tease the chaos, like \"is this cooking or a street fight?\".\n")
	if req.DayNumber <= 1 {
		sb.WriteString("It is their first day, so be encouraging.\n")
	}
	sb.WriteString("Keep the tone light and appetizing, like a food-app review.\n")
	return sb.String()
}
