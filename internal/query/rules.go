package query

var PetRules = []Rule{
	ExactRule("status", "status", Lower),
	ExactRule("species", "species", String),
	ExactRule("approved", "approved", Bool),
	SubstringRule("search", "name", "species", "breed"),
}

var BookingRules = []Rule{
	ExactRule("serviceType", "service_type", Lower),
	ExactRule("status", "status", Lower),
}

var DonationRules = []Rule{
	ExactRule("paymentStatus", "payment_status", Lower),
	SubstringRule("cause", "cause"),
	RelatedRule("search", []string{"cause"}, Relation{
		Table:      "users",
		LocalKey:   "user_id",
		ForeignKey: "id",
		Fields:     []string{"name", "email"},
	}),
}

var UserRules = []Rule{
	ExactRule("role", "role", Lower),
	ExactRule("isVerified", "is_verified", Bool),
}

var NotificationRules = []Rule{
	ExactRule("read", "read", Bool),
}

var TrainingRules = []Rule{
	ExactRule("category", "category", String),
	SubstringRule("search", "title", "description", "category"),
}
