// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xviper provides customizations on use of viper for configuration loading.

Every CAMA binary follows the same conventions: a configuration file named after the
application searched for in /etc/<app>, $HOME/.<app> and the working directory, environment
variables prefixed with the application name, and --file / --name flags that override the
file search.
*/
package xviper
