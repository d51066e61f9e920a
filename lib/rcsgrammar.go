package rcs

/*
rcstext   ::=  admin {delta}* desc {deltatext}*

admin     ::=  head       {num} ";"
               { branch   {num} ";" }
               access     {id}* ";"
               symbols    { sym ":" num }* ";"
               locks      { id ":" num }* ";"
               { strict ";" }
               { integrity  {intstring} ";" }
               { comment    {string} ";" }
               { expand     {string} ";" }
               { newphrase }*

delta     ::=  num
               date       num ";"
               author     id ";"
               state      {id} ";"
               branches   {num}* ";"
               next       {num} ";"
               { newphrase }*

desc      ::=  desc string

deltatext ::=  num
               log string
               { newphrase }*
               text string

num       ::=  { digit | "." }+

digit     ::=  "0" | "1" | ... | "9"

id        ::=  { num } idchar { idchar | num }*

sym       ::=  { digit }* idchar { idchar | digit }*

idchar    ::=  any visible graphic character except special

special   ::=  "$" | "," | "." | ":" | ";" | "@"

string    ::=  "@" { any character, with "@" doubled }* "@"

newphrase ::=  id word* ";"

word      ::=  id | num | string | ":"

The text string of the head revision is the literal content of that
revision. The text string of every other revision is an edit script in
RCS diff format: a sequence of

    "a" pos " " count "\n" <count literal lines>
    "d" pos " " count "\n"

commands, positions 1-based against the reference buffer before any
command of the script is applied.
*/
