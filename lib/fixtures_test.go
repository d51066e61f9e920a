package rcs

// Shared archive fixtures. demoArchive exercises the whole grammar:
// default branch, symbols, locks, expand, newphrases in every block
// kind, a trunk edit script and a branch edit script.
const demoArchive = `head	2.1;
branch	1.1.1;
access
	dseres
	anna;
symbols
	v2_1:2.1
	v1_1:1.1
	Fix1:1.1.1.1
	fixes:1.1.1;
locks
	dseres:2.1; strict;
comment	@# @;
expand	@kv@;
vendortag stuff @x@;

2.1
date	2021.04.10.09.38.42;	author dseres;	state Exp;
branches;
next	1.1;
commitid	abc123;

1.1
date	99.03.25.10.16.43;	author dseres;	state Exp;
branches
	1.1.1.1;
next	;

1.1.1.1
date	2021.04.11.09.00.00;	author anna;	state Exp;
branches;
next	;


desc
@demo archive
@


2.1
log
@trim the @@middle@@ line
@
text
@A
B
C
@


1.1
log
@initial@
phraseinlog yes;
text
@d2 1
@


1.1.1.1
log
@branch line@
text
@a0 1
X
@
`

// emptyArchive has a head field with no revision: legal syntax, nothing
// to reconstruct.
const emptyArchive = `head	;
access;
symbols;
locks;
desc
@@
`

// laoArchive is the classic diffutils example: the head holds the newer
// text, 1.2 is stored as a reverse edit script against it.
const laoArchive = `head	2.1;
access;
symbols;
locks; strict;

2.1
date	2021.04.10.09.38.42;	author dseres;	state Exp;
branches;
next	1.2;

1.2
date	2021.03.25.10.16.43;	author dseres;	state Exp;
branches;
next	;

desc
@initial commit
text from lao
@

2.1
log
@lao back
@
text
@The Way that can be told of is not the eternal Way;
The name that can be named is not the eternal name.
The Nameless is the origin of Heaven and Earth;
The Named is the mother of all things.
Therefore let there always be non-being,
  so we may see their subtlety,
And let there always be being,
  so we may see their outcome.
The two are the same,
But after they are produced,
  they have different names.
@

1.2
log
@Tzu has given some new idea.
@
text
@d1 2
d4 1
a4 2
The named is the mother of all things.

a11 3
They both may be called deep and profound.
Deeper and more profound,
The door of all subtleties!
@
`

const laoExpected12 = `The Nameless is the origin of Heaven and Earth;
The named is the mother of all things.

Therefore let there always be non-being,
  so we may see their subtlety,
And let there always be being,
  so we may see their outcome.
The two are the same,
But after they are produced,
  they have different names.
They both may be called deep and profound.
Deeper and more profound,
The door of all subtleties!
`
