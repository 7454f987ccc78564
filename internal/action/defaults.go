package action

// Application command idents.
const (
	Compose           = "compose"
	OpenProfile       = "open-current-account-profile"
	Refresh           = "refresh"
	Announcements     = "open-announcements"
	FollowRequests    = "open-follow-requests"
	MutesAndBlocks    = "open-mutes-blocks"
	Drafts            = "open-draft-posts"
	ScheduledPosts    = "open-scheduled-posts"
	Preferences       = "open-preferences"
	KeyboardShortcuts = "show-help-overlay"
	About             = "about"
	Quit              = "quit"
)

// QuitAccelerator is the platform quit chord.
const QuitAccelerator = "ctrl+q"

var defaultActions = []Action{
	{Ident: Compose, Group: GroupApp, Label: "New Post"},
	{Ident: OpenProfile, Group: GroupApp, Label: "Open Profile"},
	{Ident: Refresh, Group: GroupApp, Label: "Refresh"},
	{Ident: Announcements, Group: GroupApp, Label: "Announcements"},
	{Ident: FollowRequests, Group: GroupApp, Label: "Follow Requests"},
	{Ident: MutesAndBlocks, Group: GroupApp, Label: "Mutes and Blocks"},
	{Ident: Drafts, Group: GroupApp, Label: "Drafts"},
	{Ident: ScheduledPosts, Group: GroupApp, Label: "Scheduled Posts"},
	{Ident: Preferences, Group: GroupApp, Label: "Preferences"},
	{Ident: KeyboardShortcuts, Group: GroupWindow, Label: "Keyboard Shortcuts"},
	{Ident: About, Group: GroupApp, Label: "About"},
	{Ident: Quit, Group: GroupApp, Label: "Quit", Accelerator: QuitAccelerator},
}

var defaultLayout = [][]string{
	{"app." + Compose, "app." + OpenProfile, "app." + Refresh},
	{"app." + Announcements, "app." + FollowRequests, "app." + MutesAndBlocks, "app." + Drafts, "app." + ScheduledPosts},
	{"app." + Preferences, "win." + KeyboardShortcuts, "app." + About, "app." + Quit},
}

// Default builds the application registry and overflow menu.
func Default() (*Registry, Menu, error) {
	r, err := NewRegistry(defaultActions...)
	if err != nil {
		return nil, Menu{}, err
	}
	menu, err := BuildMenu(r, defaultLayout)
	if err != nil {
		return nil, Menu{}, err
	}
	return r, menu, nil
}

// MustDefault is Default for process startup; integrity errors are fatal.
func MustDefault() (*Registry, Menu) {
	r, menu, err := Default()
	if err != nil {
		panic(err)
	}
	return r, menu
}
