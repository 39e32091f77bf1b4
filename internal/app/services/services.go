package services

// Services defined in this package:
// - AuthService: credential checks, one-time codes and token issuance
// - StudentService: onboarding, profile and eligibility reports
// - PlacementService: single and bulk placement status changes
// - JobService: on and off campus listings with deadline handling
// - ApplicationService: job applications and their review pipeline
// - NotificationService: audience resolution and delivery fan-out
// - CompanyService: intake links and company hiring requests
// - SettingsService: threshold and college profile singletons
// - DashboardService: aggregate placement statistics
