/*
Package xpr implements a small expression language: a scanner, a
recursive-descent parser and a tree-walking interpreter.

Grammars

	expression     --> additive ;
	additive       --> multiplicative ( ( "+" | "-" ) multiplicative )* ;
	multiplicative --> unary ( ( "*" | "/" ) unary )* ;
	unary          --> "-" exponent
	                 | exponent ;
	exponent       --> primary ( "^" exponent )? ;
	primary        --> INTEGER | FLOAT | IDENTIFIER
	                 | call
	                 | function
	                 | "(" expression ")"
	                 | "-" primary ;
	call           --> IDENTIFIER "(" args? ")" ;
	args           --> expression ( "," expression )* ;
	function       --> IDENTIFIER "(" params? ")" "{" expression "}" ;
	params         --> IDENTIFIER ( "," IDENTIFIER )* ;

Additive and multiplicative operators are left-associative, "^" is
right-associative. A leading "-" takes an exponent as its operand so "-2^2" is
-(2^2).

A function definition binds the function in the current scope and evaluates to
it. Calls evaluate their arguments in the caller's scope and the body in a new
scope enclosed by the caller's, so names other than the parameters are looked
up where the function is called, not where it was defined.

Numbers

Integers are 64 bits and wrap around on overflow. Integer division truncates
toward zero. An integer raised to an integer in [0, 20] stays an integer, other
exponents give a float. Mixing an integer with a float converts the integer.
Dividing by zero is an error for integers and floats alike.
*/
package xpr
