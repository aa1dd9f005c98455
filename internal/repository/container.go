package repository

// Repos aggregates every entity repository. It is constructed once in main and
// injected into the service layer, so tests can build a fresh store per case.
type Repos struct {
	User         UserRepo
	Inquiry      InquiryRepo
	Consultation ConsultationRepo
	Project      ProjectRepo
	Task         TaskRepo
	Comment      CommentRepo
	TimeEntry    TimeEntryRepo
}

func New() *Repos {
	return &Repos{
		User:         NewUserRepo(),
		Inquiry:      NewInquiryRepo(),
		Consultation: NewConsultationRepo(),
		Project:      NewProjectRepo(),
		Task:         NewTaskRepo(),
		Comment:      NewCommentRepo(),
		TimeEntry:    NewTimeEntryRepo(),
	}
}
