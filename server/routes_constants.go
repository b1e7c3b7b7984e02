package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth
	RouteAuthRegister = "/api/auth/register"
	RouteAuthLogin    = "/api/auth/login"
	RouteAuthLogout   = "/api/auth/logout"
	RouteAuthMe       = "/api/auth/me"
	RouteAuthPassword = "/api/auth/password"

	// Content
	RouteHero         = "/api/hero"
	RouteProjects     = "/api/projects"
	RouteProject      = "/api/projects/{id}"
	RouteProjectTags  = "/api/projects/{id}/tags"
	RouteSkills       = "/api/skills"
	RouteSkill        = "/api/skills/{id}"
	RouteBlogPosts    = "/api/blog"
	RouteBlogPost     = "/api/blog/{slug}"
	RouteBlogPostByID = "/api/blog/id/{id}"
	RouteBlogPostTags = "/api/blog/id/{id}/tags"
	RouteBlogTags     = "/api/blog/tags"
	RouteBlogTag      = "/api/blog/tags/{id}"
	RouteContact      = "/api/contact"
	RouteContactMsg   = "/api/contact/{id}"
)
