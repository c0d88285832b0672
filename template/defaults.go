package template

import "github.com/amonks/focusstudio/task"

func seed(title string, priority task.Priority, status task.Column, estimate int, tags ...string) task.Task {
	return task.Task{
		Title:    title,
		Priority: priority,
		Status:   status,
		Estimate: estimate,
		Tags:     tags,
	}
}

// Defaults returns the built-in template set. The store falls back to
// these when no template snapshot exists yet.
func Defaults() []Template {
	return []Template{
		New("Blank", nil),
		New("Deep Work Day", []task.Task{
			seed("Plan day in 5 minutes", task.PriorityHigh, task.ColumnNow, 1),
			seed("Two 50-min focus blocks", task.PriorityCritical, task.ColumnNext, 2),
			seed("Inbox Zero (15m)", task.PriorityNormal, task.ColumnLater, 1),
			seed("Walk + water + stretch", task.PriorityNormal, task.ColumnBacklog, 1),
		}),
		New("GTM Sprint — Today", []task.Task{
			seed("Finalize GitHub GTM one-pager", task.PriorityCritical, task.ColumnNow, 2, "GTM"),
			seed("Assemble demo storyboard screenshots", task.PriorityHigh, task.ColumnNow, 2, "Demo"),
			seed("Update homepage: seats remaining counter", task.PriorityHigh, task.ColumnNext, 1, "Landing"),
			seed("Draft sponsor email with projected outcomes", task.PriorityHigh, task.ColumnNext, 1, "Partnership", "Email"),
			seed("Prep GTM metrics table (CAC, LTV, MRR scenarios)", task.PriorityNormal, task.ColumnLater, 2, "GTM", "Metrics"),
			seed("Record 90s demo teaser", task.PriorityNormal, task.ColumnLater, 2, "Video", "Social"),
			seed("Set up UTM tracking for GitHub ref", task.PriorityNormal, task.ColumnBacklog, 1, "Analytics"),
		}),
		New("Partnership Day — Outreach & Collab", []task.Task{
			seed("Finalize partner one-pager & send assets", task.PriorityCritical, task.ColumnNow, 1, "Partnership"),
			seed("Tailor proposal (on-call + incident sims)", task.PriorityHigh, task.ColumnNow, 2, "Partnership"),
			seed("Observability outreach email + CTA", task.PriorityHigh, task.ColumnNext, 1, "Observability"),
			seed("Collect 3 logo/brand guidelines from partners", task.PriorityNormal, task.ColumnNext, 1, "Brand"),
			seed("Draft social co-announcement copy options", task.PriorityNormal, task.ColumnLater, 1, "Social", "Copy"),
			seed("Create shared folder structure for partner assets", task.PriorityNormal, task.ColumnLater, 1, "Ops"),
			seed("Spreadsheet: partner tracking (stage, owner, next step)", task.PriorityNormal, task.ColumnBacklog, 1, "CRM"),
		}),
		New("Content Ship Day — Newsletter + Social", []task.Task{
			seed("Outline newsletter (proof + momentum + CTA)", task.PriorityCritical, task.ColumnNow, 1, "Newsletter"),
			seed("Write newsletter draft v1", task.PriorityHigh, task.ColumnNow, 2, "Writing"),
			seed("Edit for clarity, pacing, punchy CTA", task.PriorityHigh, task.ColumnNext, 1, "Editing"),
			seed("Create LinkedIn carousel (5-7 slides)", task.PriorityHigh, task.ColumnNext, 2, "Design", "Social"),
			seed("Record 60-90s video teaser", task.PriorityNormal, task.ColumnLater, 2, "Video"),
			seed("Schedule posts + newsletter send", task.PriorityNormal, task.ColumnLater, 1, "Scheduling"),
			seed("Collect 3 quick testimonials for social proof", task.PriorityNormal, task.ColumnBacklog, 1, "Testimonial"),
		}),
		New("Interview Prep — Observability Walkthrough", []task.Task{
			seed("Spin up EKS (sample app + Ingress/ALB)", task.PriorityCritical, task.ColumnNow, 3, "EKS", "K8s"),
			seed("Instrument APM (traces, metrics, logs)", task.PriorityCritical, task.ColumnNow, 2, "APM", "Observability"),
			seed("Run synthetic error + latency scenarios", task.PriorityHigh, task.ColumnNext, 1, "SRE", "Chaos"),
			seed("Prepare 10 FAQ answers", task.PriorityHigh, task.ColumnNext, 1, "Interview"),
			seed("Tear-down + cleanup script", task.PriorityNormal, task.ColumnLater, 1, "Ops", "Cleanup"),
			seed("Deck: concise demo flow (5 slides)", task.PriorityNormal, task.ColumnLater, 1, "Deck"),
			seed("Practice 15-min live walkthrough", task.PriorityNormal, task.ColumnBacklog, 1, "Practice"),
		}),
		New("Ops & Finance — Cleanup", []task.Task{
			seed("Audit seat counter on landing page", task.PriorityCritical, task.ColumnNow, 1, "Landing"),
			seed("Payment flow sanity check (test txn + redirect)", task.PriorityCritical, task.ColumnNow, 1, "Payments"),
			seed("Webhook signature validation notes", task.PriorityHigh, task.ColumnNext, 1, "Webhook"),
			seed("Invoice template + GST checklist", task.PriorityHigh, task.ColumnNext, 1, "Finance"),
			seed("CRM: tag new leads + next actions", task.PriorityNormal, task.ColumnLater, 1, "CRM"),
			seed("Auto-reply for scholarship inquiries", task.PriorityNormal, task.ColumnLater, 1, "Ops", "Automation"),
			seed("Back up docs & assets", task.PriorityNormal, task.ColumnBacklog, 1, "Backup"),
		}),
		New("OSS Shipping Day", []task.Task{
			seed("Repo init + MIT license + README", task.PriorityCritical, task.ColumnNow, 1, "OSS", "Repo"),
			seed("Add two starter templates (Deep Work, Sprint Day)", task.PriorityHigh, task.ColumnNow, 1, "Templates"),
			seed("Set up UI scaffolding", task.PriorityHigh, task.ColumnNext, 1, "UI"),
			seed("Demo GIFs (focus mode + import/export)", task.PriorityNormal, task.ColumnNext, 1, "Docs", "Demo"),
			seed("Issue templates + contribution guide", task.PriorityNormal, task.ColumnLater, 1, "OSS"),
			seed("Publish template on GitHub + announce", task.PriorityNormal, task.ColumnLater, 1, "Launch"),
			seed("Add JSON schema for templates", task.PriorityNormal, task.ColumnBacklog, 2, "DX"),
		}),
		New("Calm Reset — Light Day", []task.Task{
			seed("Plan day in 5 minutes", task.PriorityHigh, task.ColumnNow, 1, "Routine"),
			seed("One 50-min deep work block", task.PriorityHigh, task.ColumnNow, 2, "Focus"),
			seed("Inbox Zero (15m)", task.PriorityNormal, task.ColumnNext, 1, "Ops"),
			seed("Walk + water + stretch", task.PriorityNormal, task.ColumnNext, 1, "Health"),
			seed("Read 20 pages", task.PriorityNormal, task.ColumnLater, 1, "Learning"),
			seed("Reflect & journal (10m)", task.PriorityNormal, task.ColumnLater, 1, "Mindset"),
		}),
	}
}
