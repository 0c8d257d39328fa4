package mail

type AccessApprovedData struct {
	Email string
}

type NewsletterData struct {
	LeadCount int
	Titles    []string
}

type EmailSender struct {
	Host        string
	Port        int
	User        string
	Password    string
	From        string
	TemplateDir string
}
