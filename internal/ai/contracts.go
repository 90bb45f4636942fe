package ai

import "synctech/internal/schema"

// LeadSchemaVersion identifies the current revision of the lead shape. The
// search prompt has been revised several times, each revision widening the
// requested fields; everything added after the first revision is optional so
// leads saved under older revisions still load.
const LeadSchemaVersion = 5

var leadDefinition = &schema.Definition{
	Name: "Lead",
	Fields: []schema.Field{
		{Name: "companyName", Type: schema.TypeString, Required: true, Description: "The name of the company."},
		{Name: "summary", Type: schema.TypeString, Required: true, Description: "A brief summary of the company, including its mission and recent activities."},
		{Name: "painPoints", Type: schema.TypeString, Required: true, Description: "Specific challenges or pain points the company is likely facing that SYNC TECH can solve."},
		{Name: "techNeeds", Type: schema.TypeString, Required: true, Description: "The technology needs of the company, derived from their pain points."},
		{Name: "contactName", Type: schema.TypeString, Description: "The name of a key contact person at the company, like a founder, owner, or manager."},
		{Name: "email", Type: schema.TypeString, Description: "A contact email for the company or the key contact person."},
		{Name: "phone", Type: schema.TypeString, Description: "A contact phone number for the company or the key contact person."},
		{Name: "website", Type: schema.TypeString, Description: "The company's website URL. If not available, this should be noted."},
		{Name: "address", Type: schema.TypeString, Description: "The physical address of the business, if available."},
		{Name: "rating", Type: schema.TypeNumber, Min: schema.Num(1), Max: schema.Num(5), Description: "The business's rating, for example, from Google Maps reviews (on a scale of 1-5)."},
		{Name: "reviews", Type: schema.TypeString, Description: "A brief summary of customer reviews, if available."},
		{Name: "notes", Type: schema.TypeString, Description: "Additional notes on why this is a good lead, especially if they do not have a website or strong online presence."},
	},
}

var leadSearchInput = &schema.Definition{
	Name: "LeadSearchInput",
	Fields: []schema.Field{
		{Name: "industry", Type: schema.TypeString, Required: true, MinLen: 3, Description: "The industry to search for leads in."},
		{Name: "location", Type: schema.TypeString, Required: true, MinLen: 2, Description: "The location to search for leads in."},
	},
}

var leadSearchOutput = &schema.Definition{
	Name: "LeadSearchOutput",
	Fields: []schema.Field{
		{Name: "leads", Type: schema.TypeArray, Required: true, Items: leadDefinition, Description: "An array of at least 20 well-researched leads."},
	},
}

var outreachInput = &schema.Definition{
	Name: "OutreachContentInput",
	Fields: []schema.Field{
		{Name: "companyName", Type: schema.TypeString, Required: true, MinLen: 1, Description: "The name of the company to reach out to."},
		{Name: "summary", Type: schema.TypeString, Required: true, MinLen: 1, Description: "A brief summary of the company."},
		{Name: "painPoints", Type: schema.TypeString, Required: true, MinLen: 1, Description: "The company's identified challenges and pain points."},
		{Name: "techNeeds", Type: schema.TypeString, Required: true, MinLen: 1, Description: "The identified technology needs of the company."},
	},
}

var outreachOutput = &schema.Definition{
	Name: "OutreachContentOutput",
	Fields: []schema.Field{
		{Name: "emailSubject", Type: schema.TypeString, Required: true, Description: "The subject line for the cold email."},
		{Name: "emailBody", Type: schema.TypeString, Required: true, Description: "The body of the cold email."},
		{Name: "proposalOutline", Type: schema.TypeString, Required: true, Description: "A complete, client-ready proposal in Markdown format."},
	},
}

var blogInput = &schema.Definition{
	Name: "BlogGeneratorInput",
	Fields: []schema.Field{
		{Name: "topic", Type: schema.TypeString, Required: true, MinLen: 3, Description: "The topic for the blog post."},
	},
}

var blogOutput = &schema.Definition{
	Name: "BlogGeneratorOutput",
	Fields: []schema.Field{
		{Name: "title", Type: schema.TypeString, Required: true, Description: "The title of the blog post."},
		{Name: "content", Type: schema.TypeString, Required: true, Description: "The full content of the blog post in Markdown format."},
	},
}
