package orchestrator

const (
	promptEntry   = "Enter the website URL to fetch files from or 'r' to resume a session: "
	promptSession = "Select a session number: "
	promptFile    = "Select a file number to audit, 'b' to go back, 'n' for new URL, or 'q' to quit: "
	promptNext    = "Enter 'c' to continue, 'b' to go back, 'n' for new URL, or 'q' to quit: "

	msgNoSessions       = "No existing sessions found."
	msgInvalidSelection = "Invalid selection."
	msgNotANumber       = "Invalid input. Please enter a number."
	msgInvalidFileInput = "Invalid input. Please enter a number or a valid option."
	msgInvalidNext      = "Invalid input. Please enter 'c', 'b', 'n' or 'q'."
	msgDownloading      = "Downloading resources..."
	msgDownloadComplete = "Download complete."
	msgAnalyzing        = "Analyzing file..."
	msgLocalFindings    = "Local checks flagged %d item(s); see the report for details."
)
