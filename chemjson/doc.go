/*
 * doc.go, part of gobalance.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package chemjson

//Package chemjson implements serializacion and unserialization of
//balancing requests and results. It's planned use is the communication of goBalance
//programs with other, independent programs which can be written in
//languages other than Go, as long as those languages implement a
//way of serializing and unserializing JSON data.
//Requests and responses are exchanged one JSON object per line, so an external
//program can transmit a job to a goBalance program and later collect the
//results, for instance, via UNIX pipes.
