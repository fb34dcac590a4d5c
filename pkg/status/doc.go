/*
Package status formats the one-line messages shown to the user.

	+----------+       +-----------+       +----------+
	| Executor | ----> |  status   | ----> | Reporter |
	|  (copy)  |       | (format)  |       |  (env)   |
	+----------+       +-----------+       +----------+

Every copy reports a start message and either a success or an error
message. Errors always carry the source and the destination.
*/
package status
