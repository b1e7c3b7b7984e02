package server

// initRoutes is the authorization policy table: every route is declared
// here as either public or protected. All routes pass through the auth
// context middleware (the gate); protected routes additionally require
// that the gate established an authenticated context.
func (s *Server) initRoutes() {
	public := s.APIMiddleware()
	protected := append(s.APIMiddleware(), s.RequireAuth())

	// Auth
	s.RegisterRouteHandler("POST "+RouteAuthRegister, ChainMiddleware(s.RegisterHandler(), public...))
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), public...))
	s.RegisterRouteHandler("POST "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), public...))
	s.RegisterRouteHandler("GET "+RouteAuthMe, ChainMiddleware(s.MeHandler(), protected...))
	s.RegisterRouteHandler("PUT "+RouteAuthPassword, ChainMiddleware(s.ChangePasswordHandler(), protected...))

	// Hero
	s.RegisterRouteHandler("GET "+RouteHero, ChainMiddleware(s.GetHeroHandler(), public...))
	s.RegisterRouteHandler("PUT "+RouteHero, ChainMiddleware(s.UpsertHeroHandler(), protected...))

	// Projects
	s.RegisterRouteHandler("GET "+RouteProjects, ChainMiddleware(s.ListProjectsHandler(), public...))
	s.RegisterRouteHandler("GET "+RouteProject, ChainMiddleware(s.GetProjectHandler(), public...))
	s.RegisterRouteHandler("POST "+RouteProjects, ChainMiddleware(s.CreateProjectHandler(), protected...))
	s.RegisterRouteHandler("PUT "+RouteProject, ChainMiddleware(s.UpdateProjectHandler(), protected...))
	s.RegisterRouteHandler("DELETE "+RouteProject, ChainMiddleware(s.DeleteProjectHandler(), protected...))
	s.RegisterRouteHandler("PUT "+RouteProjectTags, ChainMiddleware(s.ReplaceProjectTagsHandler(), protected...))

	// Skills
	s.RegisterRouteHandler("GET "+RouteSkills, ChainMiddleware(s.ListSkillsHandler(), public...))
	s.RegisterRouteHandler("POST "+RouteSkills, ChainMiddleware(s.CreateSkillHandler(), protected...))
	s.RegisterRouteHandler("PUT "+RouteSkill, ChainMiddleware(s.UpdateSkillHandler(), protected...))
	s.RegisterRouteHandler("DELETE "+RouteSkill, ChainMiddleware(s.DeleteSkillHandler(), protected...))

	// Blog
	s.RegisterRouteHandler("GET "+RouteBlogPosts, ChainMiddleware(s.ListPostsHandler(), public...))
	s.RegisterRouteHandler("GET "+RouteBlogTags, ChainMiddleware(s.ListTagsHandler(), public...))
	s.RegisterRouteHandler("GET "+RouteBlogPost, ChainMiddleware(s.GetPostHandler(), public...))
	s.RegisterRouteHandler("POST "+RouteBlogPosts, ChainMiddleware(s.CreatePostHandler(), protected...))
	s.RegisterRouteHandler("PUT "+RouteBlogPostByID, ChainMiddleware(s.UpdatePostHandler(), protected...))
	s.RegisterRouteHandler("DELETE "+RouteBlogPostByID, ChainMiddleware(s.DeletePostHandler(), protected...))
	s.RegisterRouteHandler("PUT "+RouteBlogPostTags, ChainMiddleware(s.ReplacePostTagsHandler(), protected...))
	s.RegisterRouteHandler("POST "+RouteBlogTags, ChainMiddleware(s.CreateTagHandler(), protected...))
	s.RegisterRouteHandler("DELETE "+RouteBlogTag, ChainMiddleware(s.DeleteTagHandler(), protected...))

	// Contact
	s.RegisterRouteHandler("POST "+RouteContact, ChainMiddleware(s.SubmitContactHandler(), public...))
	s.RegisterRouteHandler("GET "+RouteContact, ChainMiddleware(s.ListContactHandler(), protected...))
	s.RegisterRouteHandler("DELETE "+RouteContactMsg, ChainMiddleware(s.DeleteContactHandler(), protected...))
}
