// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and only ever call command
// handlers, so each tick is one more bounded unit of work.
//
// # Available Jobs
//
// OverdueRentalsJob - moves Active rent bookings whose period ended before
// today to Overdue. The transition records a domain event, and the overdue
// notice goes out once the sweep commits.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(markOverdueHandler, config.OverdueSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule defaults to "@hourly". Five-field cron expressions and
// expressions with a leading seconds field are accepted as well.
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. Bookings marked
// before the failure stay marked.
package jobs
