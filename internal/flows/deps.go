package flows

// Deps groups flow dependency sets. The root client builds this once and
// delegates its operation methods to the matching flow implementation.
type Deps struct {
	SignIn  SignInDeps
	SignUp  SignUpDeps
	SignOut SignOutDeps
	Refresh RefreshDeps
}
