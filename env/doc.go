/*
Package env provides an interface-based abstraction for environment variable
access, so the settings lookup can be tested without touching the process
environment.

Production code uses OSReader:

	path := config.SettingsPath(&env.OSReader{})

Tests substitute the generated mock from the mocks sub-package, or a
MapReader when no call expectations are needed:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv(env.SettingsVar).Return("/etc/app/settings.conf")
*/
package env
