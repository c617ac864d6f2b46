package panelsdk

// Backend endpoint paths, relative to the configured base URL. Kept in one
// place so the typed wrappers read like the API reference.
const (
	endpointLogin = "admin/login-panel"

	endpointAddCategory    = "admin/add-category"
	endpointCategories     = "admin/get-category"
	endpointAddSubCategory = "admin/add-sub-category"

	endpointAddCity = "admin/add-city"
	endpointCities  = "admin/get-city"

	endpointAddEvent = "admin/add-event"
	endpointEvents   = "admin/get-events"

	endpointApprovals      = "admin/get-approvals-request"
	endpointApprovalAction = "admin/approval-action"

	endpointEditProfile = "admin/edit-profile"

	endpointMOUList      = "admin/get-mou"
	endpointSendMOUOTP   = "admin/send-mou-otp"
	endpointVerifyMOUOTP = "admin/verify-mou-otp"
)

func endpointSubCategories(categoryID string) string {
	return "admin/get-sub-category/" + categoryID
}

func endpointEditCity(cityID string) string {
	return "admin/edit-city/" + cityID
}

func endpointEditEvent(eventID string) string {
	return "admin/edit-event/" + eventID
}

func endpointProfile(userID string) string {
	return "admin/get-profile/" + userID
}
