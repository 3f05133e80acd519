// Command labconsole is a terminal demo of the console core: it loads the
// seeded catalog, opens a session for the requested actor, and prints the
// dashboard the presentation shell would render.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"labcore/internal/catalog"
	"labcore/internal/core"
	"labcore/pkg/domain"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "labconsole:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		actorID   = flag.String("actor", "demo-admin", "actor id")
		actorRole = flag.String("role", string(domain.RoleTop), "actor role (top|manager|staff|assistant)")
		labs      = flag.String("labs", "", "comma-separated lab membership ids")
	)
	flag.Parse()

	store, err := catalog.Open()
	if err != nil {
		return err
	}
	ctx := context.Background()
	seed, err := store.Laboratories(ctx)
	if err != nil {
		return err
	}

	actor := domain.Actor{
		ID:   *actorID,
		Role: domain.Role(*actorRole),
	}
	if *labs != "" {
		actor.LabMemberships = strings.Split(*labs, ",")
	}

	tasks := core.NewTaskStore(core.NewDefaultRulesEngine())
	session := core.NewSession(actor, seed, tasks,
		core.WithMetrics(core.NewExpvarMetricsRecorder("labconsole_session")))

	summary := session.Summary()
	fmt.Printf("actor %s (%s), dataset %s\n", actor.ID, actor.Role, session.SelectedID())
	fmt.Printf("laboratories:      %d\n", summary.Laboratories)
	fmt.Printf("lost objects:      %d\n", summary.LostObjects)
	fmt.Printf("open loan reports: %d\n", summary.OpenLoanReports)
	fmt.Printf("reservations:      %d\n", summary.Reservations)
	fmt.Printf("active members:    %d\n", summary.ActiveMembers)
	fmt.Printf("schedule slots:    %d\n", summary.Schedules)

	for role, members := range session.MembersByRole() {
		fmt.Printf("members %s: %d\n", role, len(members))
	}
	for _, task := range session.VisibleTasks() {
		fmt.Printf("task %s [%s] -> %s\n", task.Title, task.Status, task.AssigneeID)
	}
	for _, msg := range session.Messages() {
		fmt.Println("notice:", msg.Text)
	}
	return nil
}
