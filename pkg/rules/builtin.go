package rules

// Builtin returns the default error-pattern rules, tuned for PSM session
// gateway logs. Order matters: classification is first-match-wins, so more
// specific patterns come before broader ones.
func Builtin() []Rule {
	return []Rule{
		{
			Label:    "NetworkError",
			Matcher:  MustRegex(`nsUtils.*err:\s*5|network\s+list.*err:\s*5`),
			Severity: SeverityHigh,
		},
		{
			Label:    "TunnelError",
			Matcher:  MustRegex(`CTunnelMgr.*No tunnel found|tunnel.*not\s+found`),
			Severity: SeverityHigh,
		},
		{
			Label:    "Proxy403",
			Matcher:  MustRegex(`HTTP\s+response\s+code:\s*403|forbidden`),
			Severity: SeverityMedium,
		},
		{
			Label:    "RecordingCorrupted",
			Matcher:  MustRegex(`corrupted\s+recording|Failed to finalize record|Recovery process failed to recover`),
			Severity: SeverityHigh,
		},
		{
			Label:    "PSM_DuplicateSession",
			Matcher:  MustRegex(`Duplicated session was (created|deleted)|Session UUID.*was unregistered`),
			Severity: SeverityMedium,
		},
		{
			Label:    "PSM_VaultIssues",
			Matcher:  MustRegex(`Attempting to delete the Vault user session|Vault session .* does not exist|Open vault file operation (success|fail)`),
			Severity: SeverityHigh,
		},
		{
			Label:    "PSM_ListenerLogoff",
			Matcher:  MustRegex(`PSM listener.*logoff|TSSession logoff event`),
			Severity: SeverityLow,
		},
		{
			Label:    "PSM_InternalConn",
			Matcher:  MustRegex(`InternalConnectionClient.*(has stopped|Terminating session process)`),
			Severity: SeverityMedium,
		},
		{
			Label:    "Auth_TicketMissing",
			Matcher:  MustRegex(`Ticket ID was not found|Failed to find session identifiers|session LUID was not found`),
			Severity: SeverityMedium,
		},
	}
}
